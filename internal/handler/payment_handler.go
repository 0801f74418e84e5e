package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"
	"app/prometheus"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) RegisterRoutes(g *echo.Group, cfg config.Config) {
	auth := middleware.AuthJWT(cfg)

	g.POST("/payments/upload-receipt", h.submit, auth, middleware.RequireRoles("buyer"))
	// /verify is an alias of /upload-receipt.
	g.POST("/payments/verify", h.submit, auth, middleware.RequireRoles("buyer"))
	g.GET("/payments/pending", h.listPending, auth, middleware.RequireRoles("seller", "admin"))
	g.POST("/payments/:id/confirm", h.confirm, auth, middleware.RequireRoles("seller", "admin"))
	g.POST("/payments/:id/reject", h.reject, auth, middleware.RequireRoles("seller", "admin"))
}

type paymentSubmitRequest struct {
	OrderID        int64  `json:"order_id"`
	TransactionRef string `json:"transaction_ref"`
	ReceiptImage   string `json:"receipt_image"`
}

func (h *PaymentHandler) submit(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req paymentSubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SubmitPaymentClaim(c.Request().Context(), actor, usecase.SubmitPaymentClaimInput{
		OrderID:        req.OrderID,
		TransactionRef: req.TransactionRef,
		ReceiptImage:   req.ReceiptImage,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PaymentHandler) listPending(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListPending(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) confirm(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ConfirmPayment(c.Request().Context(), actor, id)
	if err != nil {
		return writeError(c, err)
	}

	prometheus.PaymentsConfirmedCounter.Inc()
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) reject(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.RejectPayment(c.Request().Context(), actor, id)
	if err != nil {
		return writeError(c, err)
	}

	prometheus.PaymentsRejectedCounter.Inc()
	return c.JSON(http.StatusOK, out)
}
