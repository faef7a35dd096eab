package response

import "time"

type InvestmentResponse struct {
	InvestmentID      string                 `json:"investment_id"`
	Description       string                 `json:"description"`
	InitialValue      uint64                 `json:"initial_value"`
	CurrentValue      uint64                 `json:"current_value"`
	CreatedAt         time.Time              `json:"created_at"`
	LastDistributedAt time.Time              `json:"last_distributed_at"`
	Contributions     []ContributionResponse `json:"contributions"`
}

type ContributionResponse struct {
	Amount        uint64    `json:"amount"`
	ContributedAt time.Time `json:"contributed_at"`
}
