package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"
	"app/prometheus"

	"github.com/labstack/echo/v4"
)

type CommissionHandler struct {
	uc *usecase.CommissionUsecase
}

func NewCommissionHandler(uc *usecase.CommissionUsecase) *CommissionHandler {
	return &CommissionHandler{uc: uc}
}

func (h *CommissionHandler) RegisterRoutes(g *echo.Group, cfg config.Config) {
	auth := middleware.AuthJWT(cfg)

	g.GET("/commissions", h.list, auth, middleware.RequireRoles("seller", "admin"))
	g.GET("/commissions/stats", h.stats, auth, middleware.RequireRoles("seller", "admin"))
	g.POST("/commissions/:id/pay", h.pay, auth, middleware.RequireRoles("seller", "admin"))
	g.GET("/commissions/payments/pending", h.listPendingPayments, auth, middleware.RequireRoles("admin"))
	g.POST("/commissions/payments/:id/confirm", h.confirmPayment, auth, middleware.RequireRoles("admin"))
}

func (h *CommissionHandler) list(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommissionHandler) stats(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.Stats(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type commissionPayRequest struct {
	TransactionRef string `json:"transaction_ref"`
	ReceiptImage   string `json:"receipt_image"`
}

func (h *CommissionHandler) pay(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req commissionPayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PayCommission(c.Request().Context(), actor, id, usecase.PayCommissionInput{
		TransactionRef: req.TransactionRef,
		ReceiptImage:   req.ReceiptImage,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CommissionHandler) listPendingPayments(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListPendingPayments(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommissionHandler) confirmPayment(c echo.Context) error {
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

	prometheus.CommissionsSettledCounter.Inc()
	return c.JSON(http.StatusOK, out)
}
