package request

type DistributionRequest struct {
	Profit uint64 `json:"profit"`
}
