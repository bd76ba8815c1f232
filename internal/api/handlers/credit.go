package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/belajarhosting/platform/internal/api/dto"
	"github.com/belajarhosting/platform/internal/api/middleware"
	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/utils"
	"github.com/belajarhosting/platform/internal/pkg/validator"
)

// CreditHandler handles credit balance and top-up requests
type CreditHandler struct {
	service   credit.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewCreditHandler creates a new credit handler
func NewCreditHandler(service credit.Service, log *logger.Logger, val *validator.Validator) *CreditHandler {
	return &CreditHandler{service: service, logger: log, validator: val}
}

// Balance returns the user's credit balance
// @Summary Credit balance
// @Tags Credits
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Security BearerAuth
// @Router /credits/balance [get]
func (h *CreditHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	balance, err := h.service.Balance(r.Context(), userID)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get balance")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.BalanceResponse{BalanceIDR: balance})
}

// TopUp creates a pending top-up transaction
// @Summary Create top-up
// @Description Creates a pending transaction settled later by an admin
// @Tags Credits
// @Accept json
// @Produce json
// @Param request body dto.TopUpRequest true "Amount and payment method"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Below minimum or missing method"
// @Security BearerAuth
// @Router /credits/topup [post]
func (h *CreditHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.TopUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	tx, err := h.service.TopUp(r.Context(), userID, req.AmountIDR, req.Method)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to create top-up")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, tx)
}

// List returns the user's credit transactions
// @Summary List transactions
// @Tags Credits
// @Produce json
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /credits/transactions [get]
func (h *CreditHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	p := utils.ParsePaginationParams(r)

	txs, total, err := h.service.List(r.Context(), userID, p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list transactions")
		return
	}

	writePage(w, txs, p, total)
}

// Cancel cancels a pending transaction owned by the user
// @Summary Cancel pending transaction
// @Tags Credits
// @Param id path int true "Transaction ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse "Not found or not owned"
// @Failure 409 {object} utils.ErrorResponse "Not pending"
// @Security BearerAuth
// @Router /credits/transactions/{id}/cancel [post]
func (h *CreditHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := h.service.Cancel(r.Context(), userID, id); err != nil {
		utils.WriteAppError(w, err, "Failed to cancel transaction")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Transaction cancelled", nil)
}
