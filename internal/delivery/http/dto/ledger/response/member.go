package response

import "time"

type MemberResponse struct {
	MemberID          string                     `json:"member_id"`
	TotalBalance      uint64                     `json:"total_balance"`
	JoinedAt          time.Time                  `json:"joined_at"`
	Investments       []InvestmentResponse       `json:"investments"`
	WithdrawalHistory []WithdrawalRecordResponse `json:"withdrawal_history"`
}

type WithdrawalRecordResponse struct {
	Amount      uint64    `json:"amount"`
	WithdrawnAt time.Time `json:"withdrawn_at"`
}
