package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	ledgerRequest "github.com/LavaJover/shvark-club-ledger/internal/delivery/http/dto/ledger/request"
	ledgerResponse "github.com/LavaJover/shvark-club-ledger/internal/delivery/http/dto/ledger/response"
	"github.com/LavaJover/shvark-club-ledger/internal/domain"
	"github.com/go-chi/chi/v5"
)

type LedgerHandler struct {
	uc domain.LedgerUsecase
}

func NewLedgerHandler(uc domain.LedgerUsecase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

func (h *LedgerHandler) RegisterRoutes(r chi.Router) {
	r.Post("/members", h.Join)
	r.Get("/members/{memberID}", h.GetMember)
	r.Post("/members/{memberID}/investments", h.OpenInvestment)
	r.Get("/members/{memberID}/investments/{investmentID}", h.GetInvestment)
	r.Post("/members/{memberID}/investments/{investmentID}/contributions", h.Contribute)
	r.Post("/members/{memberID}/investments/{investmentID}/distributions", h.DistributeProfits)
	r.Post("/members/{memberID}/withdrawals", h.Withdraw)
	r.Get("/registry/totals", h.GetRegistryTotals)
}

func (h *LedgerHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req ledgerRequest.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.MemberID == "" {
		writeError(w, http.StatusBadRequest, errors.New("member_id is required"))
		return
	}

	member, err := h.uc.Join(req.MemberID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMemberResponse(member))
}

func (h *LedgerHandler) OpenInvestment(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")
	var req ledgerRequest.OpenInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.InvestmentID == "" {
		writeError(w, http.StatusBadRequest, errors.New("investment_id is required"))
		return
	}

	investment, err := h.uc.OpenInvestment(memberID, req.InvestmentID, req.Description)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInvestmentResponse(investment))
}

func (h *LedgerHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")
	investmentID := chi.URLParam(r, "investmentID")
	var req ledgerRequest.ContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	investment, err := h.uc.Contribute(memberID, investmentID, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvestmentResponse(investment))
}

func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")
	var req ledgerRequest.WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	member, err := h.uc.Withdraw(memberID, req.InvestmentID, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(member))
}

func (h *LedgerHandler) DistributeProfits(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")
	investmentID := chi.URLParam(r, "investmentID")
	var req ledgerRequest.DistributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	shares, err := h.uc.DistributeProfits(memberID, investmentID, req.Profit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDistributionResponse(shares))
}

func (h *LedgerHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.uc.GetMember(chi.URLParam(r, "memberID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(member))
}

func (h *LedgerHandler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	investment, err := h.uc.GetInvestment(chi.URLParam(r, "memberID"), chi.URLParam(r, "investmentID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvestmentResponse(investment))
}

func (h *LedgerHandler) GetRegistryTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.uc.GetRegistryTotals()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ledgerResponse.RegistryTotalsResponse{
		TotalFunds:   totals.TotalFunds,
		TotalMembers: totals.TotalMembers,
	})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAlreadyMember), errors.Is(err, domain.ErrDuplicateInvestmentID):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, domain.ErrNotAMember), errors.Is(err, domain.ErrInvalidInvestmentID):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrWithdrawalLimitExceeded),
		errors.Is(err, domain.ErrAccountFrozen):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ledgerResponse.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
