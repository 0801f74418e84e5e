package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentMethodHandler struct {
	uc *usecase.PaymentMethodUsecase
}

func NewPaymentMethodHandler(uc *usecase.PaymentMethodUsecase) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc}
}

func (h *PaymentMethodHandler) RegisterRoutes(g *echo.Group, cfg config.Config) {
	auth := middleware.AuthJWT(cfg)
	adminOnly := middleware.RequireRoles("admin")
	sellerOnly := middleware.RequireRoles("seller")

	// Platform registry. Listing is open so checkout can render logos.
	g.GET("/payment-methods", h.list)
	g.POST("/payment-methods", h.create, auth, adminOnly)
	g.PUT("/payment-methods/:id", h.update, auth, adminOnly)
	g.POST("/payment-methods/:id/toggle", h.toggle, auth, adminOnly)
	g.DELETE("/payment-methods/:id", h.delete, auth, adminOnly)

	// Seller receiving accounts.
	g.GET("/seller/payment-methods", h.listMine, auth, sellerOnly)
	g.POST("/seller/payment-methods", h.addMine, auth, sellerOnly)
	g.DELETE("/seller/payment-methods/:id", h.removeMine, auth, middleware.RequireRoles("seller", "admin"))

	// Public checkout view of one seller's accounts.
	g.GET("/sellers/:id/payment-methods", h.listBySeller)

	// Commission collection account.
	g.GET("/settings/commission-account", h.commissionAccount, auth, middleware.RequireRoles("seller", "admin"))
	g.PUT("/settings/commission-account", h.setCommissionAccount, auth, adminOnly)
}

func (h *PaymentMethodHandler) list(c echo.Context) error {
	// Unauthenticated callers get the enabled subset.
	actor, _ := actorFromContext(c)

	out, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type paymentMethodRequest struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Instructions  string `json:"instructions"`
	LogoURL       string `json:"logo_url"`
}

func (r paymentMethodRequest) toInput() usecase.PaymentMethodInput {
	return usecase.PaymentMethodInput{
		Name:          r.Name,
		Type:          r.Type,
		AccountName:   r.AccountName,
		AccountNumber: r.AccountNumber,
		Instructions:  r.Instructions,
		LogoURL:       r.LogoURL,
	}
}

func (h *PaymentMethodHandler) create(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req paymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PaymentMethodHandler) update(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req paymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type toggleRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *PaymentMethodHandler) toggle(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req toggleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SetEnabled(c.Request().Context(), actor, id, req.Enabled)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentMethodHandler) delete(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), actor, id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PaymentMethodHandler) listMine(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListMine(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type addSellerMethodRequest struct {
	PaymentMethodID int64  `json:"payment_method_id"`
	AccountName     string `json:"account_name"`
	AccountNumber   string `json:"account_number"`
}

func (h *PaymentMethodHandler) addMine(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req addSellerMethodRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddSellerMethod(c.Request().Context(), actor, usecase.AddSellerMethodInput{
		PaymentMethodID: req.PaymentMethodID,
		AccountName:     req.AccountName,
		AccountNumber:   req.AccountNumber,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PaymentMethodHandler) removeMine(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.RemoveSellerMethod(c.Request().Context(), actor, id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PaymentMethodHandler) listBySeller(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListBySeller(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentMethodHandler) commissionAccount(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.CommissionAccount(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type commissionAccountRequest struct {
	PaymentMethodID int64  `json:"payment_method_id"`
	AccountName     string `json:"account_name"`
	AccountNumber   string `json:"account_number"`
}

func (h *PaymentMethodHandler) setCommissionAccount(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req commissionAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SetCommissionAccount(c.Request().Context(), actor, usecase.SetCommissionAccountInput{
		PaymentMethodID: req.PaymentMethodID,
		AccountName:     req.AccountName,
		AccountNumber:   req.AccountNumber,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
