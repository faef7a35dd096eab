package request

type ContributionRequest struct {
	Amount uint64 `json:"amount"`
}
