package request

type JoinRequest struct {
	MemberID string `json:"member_id"`
}
