package domain

import "errors"

var (
	ErrAlreadyMember           = errors.New("identity is already a club member")
	ErrNotAMember              = errors.New("identity is not a club member")
	ErrDuplicateInvestmentID   = errors.New("investment id already exists in portfolio")
	ErrInvalidInvestmentID     = errors.New("investment id not found in portfolio")
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrInsufficientBalance     = errors.New("requested amount exceeds matured balance")
	ErrWithdrawalLimitExceeded = errors.New("withdrawal limit for current period exceeded")
	ErrAccountFrozen           = errors.New("settlement account is frozen")
)
