package response

type RegistryTotalsResponse struct {
	TotalFunds   uint64 `json:"total_funds"`
	TotalMembers int64  `json:"total_members"`
}
