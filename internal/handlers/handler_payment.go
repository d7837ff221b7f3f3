package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger/internal/dto"
	"github.com/SscSPs/jewel_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(paymentService portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a receipt or payout and applies its effects on the referenced document and the party balance
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentOutcomeResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 422 {object} map[string]string "Amount does not fit the referenced document"
// @Failure 500 {object} map[string]string "Failed to create payment"
// @Security BearerAuth
// @Router /shops/{shopID}/payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if !bindJSON(c, &req, "CreatePayment") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	outcome, err := h.paymentService.CreatePayment(c.Request.Context(), c.Param("shopID"), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to create payment")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payment created",
		slog.String("payment_id", outcome.Payment.PaymentID),
		slog.String("payment_number", outcome.Payment.PaymentNumber))
	c.JSON(http.StatusCreated, dto.ToPaymentOutcomeResponse(outcome))
}

// listPayments godoc
// @Summary List payments
// @Description Lists a shop's payments, newest first, with optional filters and token pagination
// @Tags payments
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   status query string false "Payment status"
// @Param   paymentMode query string false "Payment mode"
// @Param   partyId query string false "Party ID"
// @Param   referenceId query string false "Reference document ID"
// @Param   limit query int false "Page size (max 100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /shops/{shopID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query for ListPayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.paymentService.ListPayments(c.Request.Context(), c.Param("shopID"), params)
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to get payment"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/{paymentID} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("shopID"), c.Param("paymentID"))
	if err != nil {
		respondError(c, err, "Failed to get payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// updatePaymentStatus godoc
// @Summary Change a payment's status
// @Description Moves a payment along its status machine. Cheque payments are routed through clearance or bounce.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   paymentID path string true "Payment ID"
// @Param   status body dto.UpdatePaymentStatusRequest true "Target status"
// @Success 200 {object} dto.PaymentOutcomeResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Failed to update payment status"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/{paymentID}/status [patch]
func (h *paymentHandler) updatePaymentStatus(c *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if !bindJSON(c, &req, "UpdatePaymentStatus") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	outcome, err := h.paymentService.UpdatePaymentStatus(c.Request.Context(), c.Param("shopID"), c.Param("paymentID"), req.Status, actorID)
	if err != nil {
		respondError(c, err, "Failed to update payment status")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentOutcomeResponse(outcome))
}

// cancelPayment godoc
// @Summary Cancel a payment
// @Description Cancels a payment and reverses whatever effects it applied
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   paymentID path string true "Payment ID"
// @Param   cancel body dto.CancelPaymentRequest true "Cancellation reason"
// @Success 200 {object} dto.PaymentOutcomeResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment cannot be cancelled"
// @Failure 500 {object} map[string]string "Failed to cancel payment"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/{paymentID}/cancel [post]
func (h *paymentHandler) cancelPayment(c *gin.Context) {
	var req dto.CancelPaymentRequest
	if !bindJSON(c, &req, "CancelPayment") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	outcome, err := h.paymentService.CancelPayment(c.Request.Context(), c.Param("shopID"), c.Param("paymentID"), req.Reason, actorID)
	if err != nil {
		respondError(c, err, "Failed to cancel payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentOutcomeResponse(outcome))
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Soft-deletes a payment by cancelling it
// @Tags payments
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentOutcomeResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment cannot be deleted"
// @Failure 500 {object} map[string]string "Failed to delete payment"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/{paymentID} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	outcome, err := h.paymentService.DeletePayment(c.Request.Context(), c.Param("shopID"), c.Param("paymentID"), actorID)
	if err != nil {
		respondError(c, err, "Failed to delete payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentOutcomeResponse(outcome))
}

// clearCheque godoc
// @Summary Clear a cheque
// @Description Completes a pending cheque payment and applies its balance effect
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   paymentID path string true "Payment ID"
// @Param   clearance body dto.ClearChequeRequest false "Clearance date"
// @Success 200 {object} dto.PaymentOutcomeResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Cheque is not pending"
// @Failure 500 {object} map[string]string "Failed to clear cheque"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/{paymentID}/cheque/clear [post]
func (h *paymentHandler) clearCheque(c *gin.Context) {
	var req dto.ClearChequeRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req, "ClearCheque") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	outcome, err := h.paymentService.ClearCheque(c.Request.Context(), c.Param("shopID"), c.Param("paymentID"), req.ClearanceDate, actorID)
	if err != nil {
		respondError(c, err, "Failed to clear cheque")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentOutcomeResponse(outcome))
}

// bounceCheque godoc
// @Summary Bounce a cheque
// @Description Fails a pending cheque payment and reverses its reference effect
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   paymentID path string true "Payment ID"
// @Param   bounce body dto.BounceChequeRequest true "Bounce reason"
// @Success 200 {object} dto.PaymentOutcomeResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Cheque is not pending"
// @Failure 500 {object} map[string]string "Failed to bounce cheque"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/{paymentID}/cheque/bounce [post]
func (h *paymentHandler) bounceCheque(c *gin.Context) {
	var req dto.BounceChequeRequest
	if !bindJSON(c, &req, "BounceCheque") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	outcome, err := h.paymentService.BounceCheque(c.Request.Context(), c.Param("shopID"), c.Param("paymentID"), req.Reason, actorID)
	if err != nil {
		respondError(c, err, "Failed to bounce cheque")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentOutcomeResponse(outcome))
}

// reconcilePayment godoc
// @Summary Reconcile a payment
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   paymentID path string true "Payment ID"
// @Param   reconcile body dto.ReconcilePaymentRequest true "Statement match"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment is not completed"
// @Failure 500 {object} map[string]string "Failed to reconcile payment"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/{paymentID}/reconcile [post]
func (h *paymentHandler) reconcilePayment(c *gin.Context) {
	var req dto.ReconcilePaymentRequest
	if !bindJSON(c, &req, "ReconcilePayment") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.ReconcilePayment(c.Request.Context(), c.Param("shopID"), c.Param("paymentID"), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to reconcile payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// unreconcilePayment godoc
// @Summary Clear a payment's reconciliation
// @Tags reconciliation
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to unreconcile payment"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/{paymentID}/reconcile [delete]
func (h *paymentHandler) unreconcilePayment(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.UnreconcilePayment(c.Request.Context(), c.Param("shopID"), c.Param("paymentID"), actorID)
	if err != nil {
		respondError(c, err, "Failed to unreconcile payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// bulkReconcile godoc
// @Summary Reconcile many payments
// @Description Reconciles every eligible item and reports the ones it skipped
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   items body dto.BulkReconcileRequest true "Statement matches"
// @Success 200 {object} dto.BulkReconcileResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to reconcile payments"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/reconcile/bulk [post]
func (h *paymentHandler) bulkReconcile(c *gin.Context) {
	var req dto.BulkReconcileRequest
	if !bindJSON(c, &req, "BulkReconcile") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	result, err := h.paymentService.BulkReconcile(c.Request.Context(), c.Param("shopID"), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to reconcile payments")
		return
	}
	c.JSON(http.StatusOK, result)
}

// refundPayment godoc
// @Summary Refund a payment
// @Description Records a refund payment against a completed payment, fully or partially
// @Tags refunds
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   paymentID path string true "Payment ID"
// @Param   refund body dto.RefundPaymentRequest true "Refund details"
// @Success 201 {object} dto.RefundResponse
// @Failure 400 {object} map[string]string "Invalid refund amount"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment cannot be refunded"
// @Failure 500 {object} map[string]string "Failed to refund payment"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/{paymentID}/refund [post]
func (h *paymentHandler) refundPayment(c *gin.Context) {
	var req dto.RefundPaymentRequest
	if !bindJSON(c, &req, "RefundPayment") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	outcome, err := h.paymentService.RefundPayment(c.Request.Context(), c.Param("shopID"), c.Param("paymentID"), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to refund payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRefundResponse(outcome))
}

// approvePayment godoc
// @Summary Approve a payment
// @Tags approvals
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment does not need approval"
// @Failure 500 {object} map[string]string "Failed to approve payment"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/{paymentID}/approve [post]
func (h *paymentHandler) approvePayment(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.ApprovePayment(c.Request.Context(), c.Param("shopID"), c.Param("paymentID"), actorID)
	if err != nil {
		respondError(c, err, "Failed to approve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// rejectPayment godoc
// @Summary Reject a payment
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   paymentID path string true "Payment ID"
// @Param   reject body dto.RejectPaymentRequest true "Rejection reason"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment does not need approval"
// @Failure 500 {object} map[string]string "Failed to reject payment"
// @Security BearerAuth
// @Router /shops/{shopID}/payments/{paymentID}/reject [post]
func (h *paymentHandler) rejectPayment(c *gin.Context) {
	var req dto.RejectPaymentRequest
	if !bindJSON(c, &req, "RejectPayment") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.RejectPayment(c.Request.Context(), c.Param("shopID"), c.Param("paymentID"), req.Reason, actorID)
	if err != nil {
		respondError(c, err, "Failed to reject payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// registerPaymentRoutes registers routes related to payments under a shop group.
func registerPaymentRoutes(shop *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := shop.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.POST("/reconcile/bulk", h.bulkReconcile)
		payments.GET("/:paymentID", h.getPayment)
		payments.DELETE("/:paymentID", h.deletePayment)
		payments.PATCH("/:paymentID/status", h.updatePaymentStatus)
		payments.POST("/:paymentID/cancel", h.cancelPayment)
		payments.POST("/:paymentID/cheque/clear", h.clearCheque)
		payments.POST("/:paymentID/cheque/bounce", h.bounceCheque)
		payments.POST("/:paymentID/reconcile", h.reconcilePayment)
		payments.DELETE("/:paymentID/reconcile", h.unreconcilePayment)
		payments.POST("/:paymentID/refund", h.refundPayment)
		payments.POST("/:paymentID/approve", h.approvePayment)
		payments.POST("/:paymentID/reject", h.rejectPayment)
	}
}
