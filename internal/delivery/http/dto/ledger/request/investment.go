package request

type OpenInvestmentRequest struct {
	InvestmentID string `json:"investment_id"`
	Description  string `json:"description"`
}
