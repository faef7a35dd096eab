package response

type DistributionResponse struct {
	Distributed uint64                `json:"distributed"`
	Shares      []ProfitShareResponse `json:"shares"`
}

type ProfitShareResponse struct {
	ContributionIndex int    `json:"contribution_index"`
	Amount            uint64 `json:"amount"`
}
