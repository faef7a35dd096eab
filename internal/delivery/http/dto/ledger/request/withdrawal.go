package request

type WithdrawalRequest struct {
	InvestmentID string `json:"investment_id"`
	Amount       uint64 `json:"amount"`
}
