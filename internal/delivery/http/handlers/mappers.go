package handlers

import (
	"sort"

	ledgerResponse "github.com/LavaJover/shvark-club-ledger/internal/delivery/http/dto/ledger/response"
	"github.com/LavaJover/shvark-club-ledger/internal/domain"
)

func toMemberResponse(member *domain.Member) ledgerResponse.MemberResponse {
	investments := make([]ledgerResponse.InvestmentResponse, 0, len(member.Portfolio))
	for _, investment := range member.Portfolio {
		investments = append(investments, toInvestmentResponse(investment))
	}
	sort.Slice(investments, func(i, j int) bool {
		return investments[i].InvestmentID < investments[j].InvestmentID
	})

	history := make([]ledgerResponse.WithdrawalRecordResponse, 0, len(member.WithdrawalHistory))
	for _, record := range member.WithdrawalHistory {
		history = append(history, ledgerResponse.WithdrawalRecordResponse{
			Amount:      record.Amount,
			WithdrawnAt: record.WithdrawnAt,
		})
	}

	return ledgerResponse.MemberResponse{
		MemberID:          member.ID,
		TotalBalance:      member.TotalBalance,
		JoinedAt:          member.JoinedAt,
		Investments:       investments,
		WithdrawalHistory: history,
	}
}

func toInvestmentResponse(investment *domain.Investment) ledgerResponse.InvestmentResponse {
	contributions := make([]ledgerResponse.ContributionResponse, 0, len(investment.Contributions))
	for _, contribution := range investment.Contributions {
		contributions = append(contributions, ledgerResponse.ContributionResponse{
			Amount:        contribution.Amount,
			ContributedAt: contribution.ContributedAt,
		})
	}

	return ledgerResponse.InvestmentResponse{
		InvestmentID:      investment.ID,
		Description:       investment.Description,
		InitialValue:      investment.InitialValue,
		CurrentValue:      investment.CurrentValue,
		CreatedAt:         investment.CreatedAt,
		LastDistributedAt: investment.LastDistributedAt,
		Contributions:     contributions,
	}
}

func toDistributionResponse(shares []domain.ProfitShare) ledgerResponse.DistributionResponse {
	out := ledgerResponse.DistributionResponse{
		Shares: make([]ledgerResponse.ProfitShareResponse, 0, len(shares)),
	}
	for _, share := range shares {
		out.Distributed += share.Amount
		out.Shares = append(out.Shares, ledgerResponse.ProfitShareResponse{
			ContributionIndex: share.ContributionIndex,
			Amount:            share.Amount,
		})
	}
	return out
}
