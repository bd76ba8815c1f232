package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/belajarhosting/platform/internal/api/dto"
	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/domain/user"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/utils"
	"github.com/belajarhosting/platform/internal/pkg/validator"
)

// AdminHandler handles the back-office: users, orders, transactions and the
// dashboard summary. Every route here sits behind the admin token scope.
type AdminHandler struct {
	users     user.Service
	orders    order.Service
	credits   credit.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	users user.Service,
	orders order.Service,
	credits credit.Service,
	log *logger.Logger,
	val *validator.Validator,
) *AdminHandler {
	return &AdminHandler{
		users:     users,
		orders:    orders,
		credits:   credits,
		logger:    log,
		validator: val,
	}
}

// Dashboard returns the back-office landing counters
// @Summary Dashboard summary
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.DashboardSummary
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Counts only; limit 1 keeps the row scans trivial
	_, totalUsers, err := h.users.List(ctx, user.Filter{}, 1, 0)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to build summary")
		return
	}
	_, pendingOrders, err := h.orders.List(ctx, order.Filter{Status: order.StatusPending}, 1, 0)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to build summary")
		return
	}
	_, activeOrders, err := h.orders.List(ctx, order.Filter{Status: order.StatusActive}, 1, 0)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to build summary")
		return
	}
	_, pendingTx, err := h.credits.ListAll(ctx, credit.Filter{Status: credit.StatusPending}, 1, 0)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to build summary")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.DashboardSummary{
		TotalUsers:          totalUsers,
		PendingOrders:       pendingOrders,
		ActiveOrders:        activeOrders,
		PendingTransactions: pendingTx,
	})
}

// ListUsers returns users with filters
// @Summary List users
// @Tags Admin
// @Produce json
// @Param search query string false "Search email and name"
// @Param role query string false "Filter by role"
// @Param verified query bool false "Filter by verification"
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	p := utils.ParsePaginationParams(r)
	q := r.URL.Query()

	filter := user.Filter{
		Search: q.Get("search"),
		Role:   q.Get("role"),
	}
	if v := q.Get("verified"); v != "" {
		verified := v == "true"
		filter.Verified = &verified
	}

	users, total, err := h.users.List(r.Context(), filter, p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list users")
		return
	}

	dtos := make([]*dto.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, userDTO(u))
	}

	writePage(w, dtos, p, total)
}

// UpdateUserRole changes a user's role
// @Summary Update user role
// @Tags Admin
// @Accept json
// @Param id path int true "User ID"
// @Param request body dto.UserRoleRequest true "New role"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/users/{id}/role [patch]
func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	var req dto.UserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	if err := h.users.UpdateRole(r.Context(), id, req.Role); err != nil {
		utils.WriteAppError(w, err, "Failed to update role")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"user_id": id,
		"role":    req.Role,
	}).Info("User role updated")

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Role updated", nil)
}

// SetUserVerified overrides a user's verification flag
// @Summary Set user verification
// @Tags Admin
// @Accept json
// @Param id path int true "User ID"
// @Param request body dto.UserVerifyRequest true "Verified flag"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/users/{id}/verify [patch]
func (h *AdminHandler) SetUserVerified(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	var req dto.UserVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	if err := h.users.SetVerified(r.Context(), id, *req.Verified); err != nil {
		utils.WriteAppError(w, err, "Failed to update verification")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Verification updated", nil)
}

// DeleteUser removes a user
// @Summary Delete user
// @Tags Admin
// @Param id path int true "User ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		utils.WriteAppError(w, err, "Failed to delete user")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "User deleted", nil)
}

// ListOrders returns orders with filters
// @Summary List orders
// @Tags Admin
// @Produce json
// @Param user_id query int false "Filter by user"
// @Param type query string false "Filter by service type"
// @Param status query string false "Filter by status"
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	p := utils.ParsePaginationParams(r)
	q := r.URL.Query()

	filter := order.Filter{
		ServiceType: q.Get("type"),
		Status:      q.Get("status"),
	}
	if v := q.Get("user_id"); v != "" {
		filter.UserID = parseInt64Query(v)
	}

	orders, total, err := h.orders.List(r.Context(), filter, p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list orders")
		return
	}

	writePage(w, orders, p, total)
}

// GetOrder returns one order
// @Summary Get order
// @Tags Admin
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/orders/{id} [get]
func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	o, err := h.orders.Get(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get order")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, o)
}

// UpdateOrderStatus moves an order between statuses
// @Summary Update order status
// @Tags Admin
// @Accept json
// @Param id path int true "Order ID"
// @Param request body dto.OrderStatusRequest true "New status"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/orders/{id}/status [patch]
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	var req dto.OrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), id, req.Status); err != nil {
		utils.WriteAppError(w, err, "Failed to update order status")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Order status updated", nil)
}

// FulfillOrder completes provisioning for a pending order
// @Summary Fulfill order
// @Description Stamps the backing instance with connection details and activates the order. VPS orders require an IP address.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body dto.FulfillRequest true "Provisioning result"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Missing IP address for VPS"
// @Failure 409 {object} utils.ErrorResponse "Order not pending"
// @Security BearerAuth
// @Router /admin/orders/{id}/fulfill [post]
func (h *AdminHandler) FulfillOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	var req dto.FulfillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	o, err := h.orders.Fulfill(r.Context(), id, order.FulfillInput{
		IPAddress: req.IPAddress,
		Host:      req.Host,
		Port:      req.Port,
		URL:       req.URL,
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to fulfill order")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"order_id":     o.ID,
		"service_type": o.ServiceType,
	}).Info("Order fulfilled")

	utils.WriteSuccess(w, http.StatusOK, o)
}

// ListTransactions returns credit transactions across users
// @Summary List transactions
// @Tags Admin
// @Produce json
// @Param user_id query int false "Filter by user"
// @Param type query string false "Filter by type"
// @Param status query string false "Filter by status"
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /admin/transactions [get]
func (h *AdminHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	p := utils.ParsePaginationParams(r)
	q := r.URL.Query()

	filter := credit.Filter{
		Type:   q.Get("type"),
		Status: q.Get("status"),
	}
	if v := q.Get("user_id"); v != "" {
		filter.UserID = parseInt64Query(v)
	}

	txs, total, err := h.credits.ListAll(r.Context(), filter, p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list transactions")
		return
	}

	writePage(w, txs, p, total)
}

// SettleTransaction marks a pending top-up paid and credits the balance
// @Summary Settle top-up
// @Tags Admin
// @Param id path int true "Transaction ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse "Not a pending top-up"
// @Security BearerAuth
// @Router /admin/transactions/{id}/settle [post]
func (h *AdminHandler) SettleTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := h.credits.Settle(r.Context(), id); err != nil {
		utils.WriteAppError(w, err, "Failed to settle transaction")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Transaction settled", nil)
}

// RejectTransaction marks a pending top-up rejected
// @Summary Reject top-up
// @Tags Admin
// @Param id path int true "Transaction ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/transactions/{id}/reject [post]
func (h *AdminHandler) RejectTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := h.credits.Reject(r.Context(), id); err != nil {
		utils.WriteAppError(w, err, "Failed to reject transaction")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Transaction rejected", nil)
}
