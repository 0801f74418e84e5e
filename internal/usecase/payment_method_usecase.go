package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type PaymentMethodUsecase struct {
	methods       repo.PaymentMethodRepository
	sellerMethods repo.SellerPaymentMethodRepository
	settings      repo.SettingRepository
	users         repo.UserRepository
}

func NewPaymentMethodUsecase(
	methods repo.PaymentMethodRepository,
	sellerMethods repo.SellerPaymentMethodRepository,
	settings repo.SettingRepository,
	users repo.UserRepository,
) *PaymentMethodUsecase {
	return &PaymentMethodUsecase{methods: methods, sellerMethods: sellerMethods, settings: settings, users: users}
}

// List returns the platform registry. Admins see everything; everyone else
// only the enabled subset.
func (u *PaymentMethodUsecase) List(ctx context.Context, actor Actor) ([]model.PaymentMethod, error) {
	methods, err := u.methods.List(ctx, !actor.IsAdmin())
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return methods, nil
}

type PaymentMethodInput struct {
	Name          string
	Type          string
	AccountName   string
	AccountNumber string
	Instructions  string
	LogoURL       string
}

func validateMethodInput(in PaymentMethodInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "payment method name is required")
	}
	switch model.PaymentMethodType(in.Type) {
	case model.MethodTypeMobileMoney, model.MethodTypeBank, model.MethodTypeEwallet:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid payment method type")
	}
	if strings.TrimSpace(in.AccountName) == "" || strings.TrimSpace(in.AccountNumber) == "" {
		return NewHTTPError(http.StatusBadRequest, "account name and number are required")
	}
	return nil
}

func (u *PaymentMethodUsecase) Create(ctx context.Context, actor Actor, in PaymentMethodInput) (model.PaymentMethod, error) {
	if !actor.IsAdmin() {
		return model.PaymentMethod{}, NewHTTPError(http.StatusForbidden, "admin only")
	}
	if err := validateMethodInput(in); err != nil {
		return model.PaymentMethod{}, err
	}
	m, err := u.methods.Create(ctx, model.PaymentMethod{
		Name:          strings.TrimSpace(in.Name),
		Type:          model.PaymentMethodType(in.Type),
		AccountName:   in.AccountName,
		AccountNumber: in.AccountNumber,
		Instructions:  in.Instructions,
		LogoURL:       in.LogoURL,
		Enabled:       true,
	})
	if err != nil {
		return model.PaymentMethod{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return m, nil
}

func (u *PaymentMethodUsecase) Update(ctx context.Context, actor Actor, id int64, in PaymentMethodInput) (model.PaymentMethod, error) {
	if !actor.IsAdmin() {
		return model.PaymentMethod{}, NewHTTPError(http.StatusForbidden, "admin only")
	}
	m, err := u.methods.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.PaymentMethod{}, NewHTTPError(http.StatusNotFound, "payment method not found")
	}
	if err != nil {
		return model.PaymentMethod{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := validateMethodInput(in); err != nil {
		return model.PaymentMethod{}, err
	}

	m.Name = strings.TrimSpace(in.Name)
	m.Type = model.PaymentMethodType(in.Type)
	m.AccountName = in.AccountName
	m.AccountNumber = in.AccountNumber
	m.Instructions = in.Instructions
	m.LogoURL = in.LogoURL

	if err := u.methods.Update(ctx, m); err != nil {
		return model.PaymentMethod{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return m, nil
}

func (u *PaymentMethodUsecase) SetEnabled(ctx context.Context, actor Actor, id int64, enabled bool) (model.PaymentMethod, error) {
	if !actor.IsAdmin() {
		return model.PaymentMethod{}, NewHTTPError(http.StatusForbidden, "admin only")
	}
	m, err := u.methods.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.PaymentMethod{}, NewHTTPError(http.StatusNotFound, "payment method not found")
	}
	if err != nil {
		return model.PaymentMethod{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := u.methods.SetEnabled(ctx, id, enabled); err != nil {
		return model.PaymentMethod{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	m.Enabled = enabled
	return m, nil
}

func (u *PaymentMethodUsecase) Delete(ctx context.Context, actor Actor, id int64) error {
	if !actor.IsAdmin() {
		return NewHTTPError(http.StatusForbidden, "admin only")
	}
	if _, err := u.methods.FindByID(ctx, id); err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "payment method not found")
	} else if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := u.methods.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// SellerMethodOutput carries the platform method name alongside the seller's
// account so checkout can render it without a second call.
type SellerMethodOutput struct {
	model.SellerPaymentMethod
	MethodName string                  `json:"method_name"`
	MethodType model.PaymentMethodType `json:"method_type"`
	LogoURL    string                  `json:"logo_url,omitempty"`
}

func (u *PaymentMethodUsecase) decorate(ctx context.Context, rows []model.SellerPaymentMethod) []SellerMethodOutput {
	out := make([]SellerMethodOutput, 0, len(rows))
	for _, row := range rows {
		dec := SellerMethodOutput{SellerPaymentMethod: row}
		if m, err := u.methods.FindByID(ctx, row.PaymentMethodID); err == nil {
			dec.MethodName = m.Name
			dec.MethodType = m.Type
			dec.LogoURL = m.LogoURL
		}
		out = append(out, dec)
	}
	return out
}

func (u *PaymentMethodUsecase) ListMine(ctx context.Context, actor Actor) ([]SellerMethodOutput, error) {
	if !actor.IsSeller() {
		return nil, NewHTTPError(http.StatusForbidden, "seller only")
	}
	rows, err := u.sellerMethods.ListBySellerID(ctx, actor.ID, false)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.decorate(ctx, rows), nil
}

// ListBySeller is the public checkout view: enabled accounts of the seller,
// restricted to platform methods still enabled by the admin.
func (u *PaymentMethodUsecase) ListBySeller(ctx context.Context, sellerID int64) ([]SellerMethodOutput, error) {
	rows, err := u.sellerMethods.ListBySellerID(ctx, sellerID, true)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	out := make([]SellerMethodOutput, 0, len(rows))
	for _, row := range rows {
		m, err := u.methods.FindByID(ctx, row.PaymentMethodID)
		if err != nil || !m.Enabled {
			continue
		}
		out = append(out, SellerMethodOutput{
			SellerPaymentMethod: row,
			MethodName:          m.Name,
			MethodType:          m.Type,
			LogoURL:             m.LogoURL,
		})
	}
	return out, nil
}

type AddSellerMethodInput struct {
	PaymentMethodID int64
	AccountName     string
	AccountNumber   string
}

func (u *PaymentMethodUsecase) AddSellerMethod(ctx context.Context, actor Actor, in AddSellerMethodInput) (SellerMethodOutput, error) {
	if !actor.IsSeller() {
		return SellerMethodOutput{}, NewHTTPError(http.StatusForbidden, "seller only")
	}
	if strings.TrimSpace(in.AccountName) == "" || strings.TrimSpace(in.AccountNumber) == "" {
		return SellerMethodOutput{}, NewHTTPError(http.StatusBadRequest, "account name and number are required")
	}

	m, err := u.methods.FindByID(ctx, in.PaymentMethodID)
	if err == repo.ErrNotFound {
		return SellerMethodOutput{}, NewHTTPError(http.StatusBadRequest, "payment method not found")
	}
	if err != nil {
		return SellerMethodOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !m.Enabled {
		return SellerMethodOutput{}, NewHTTPError(http.StatusBadRequest, "payment method is disabled")
	}

	exists, err := u.sellerMethods.ExistsBySellerAndMethod(ctx, actor.ID, m.ID)
	if err != nil {
		return SellerMethodOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return SellerMethodOutput{}, NewHTTPError(http.StatusConflict, "payment method already registered")
	}

	row, err := u.sellerMethods.Create(ctx, model.SellerPaymentMethod{
		SellerID:        actor.ID,
		PaymentMethodID: m.ID,
		AccountName:     in.AccountName,
		AccountNumber:   in.AccountNumber,
		Enabled:         true,
	})
	if err != nil {
		return SellerMethodOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return SellerMethodOutput{SellerPaymentMethod: row, MethodName: m.Name, MethodType: m.Type, LogoURL: m.LogoURL}, nil
}

func (u *PaymentMethodUsecase) RemoveSellerMethod(ctx context.Context, actor Actor, id int64) error {
	row, err := u.sellerMethods.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "payment method not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !actor.IsAdmin() && row.SellerID != actor.ID {
		return NewHTTPError(http.StatusForbidden, "not authorized")
	}
	if err := u.sellerMethods.Delete(ctx, row.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// CommissionAccountOutput is where sellers send commission settlements.
type CommissionAccountOutput struct {
	PaymentMethodID int64  `json:"payment_method_id"`
	MethodName      string `json:"method_name,omitempty"`
	AccountName     string `json:"account_name"`
	AccountNumber   string `json:"account_number"`
}

func (u *PaymentMethodUsecase) CommissionAccount(ctx context.Context, actor Actor) (CommissionAccountOutput, error) {
	if !actor.IsAdmin() && !actor.IsSeller() {
		return CommissionAccountOutput{}, NewHTTPError(http.StatusForbidden, "not authorized")
	}
	s, err := u.settings.Get(ctx, model.SettingCommissionPaymentMethod)
	if err == repo.ErrNotFound {
		return CommissionAccountOutput{}, NewHTTPError(http.StatusNotFound, "commission account not configured")
	}
	if err != nil {
		return CommissionAccountOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := CommissionAccountOutput{
		PaymentMethodID: s.PaymentMethodID,
		AccountName:     s.AccountName,
		AccountNumber:   s.AccountNumber,
	}
	if m, err := u.methods.FindByID(ctx, s.PaymentMethodID); err == nil {
		out.MethodName = m.Name
	}
	return out, nil
}

type SetCommissionAccountInput struct {
	PaymentMethodID int64
	AccountName     string
	AccountNumber   string
}

func (u *PaymentMethodUsecase) SetCommissionAccount(ctx context.Context, actor Actor, in SetCommissionAccountInput) (CommissionAccountOutput, error) {
	if !actor.IsAdmin() {
		return CommissionAccountOutput{}, NewHTTPError(http.StatusForbidden, "admin only")
	}
	if strings.TrimSpace(in.AccountName) == "" || strings.TrimSpace(in.AccountNumber) == "" {
		return CommissionAccountOutput{}, NewHTTPError(http.StatusBadRequest, "account name and number are required")
	}
	m, err := u.methods.FindByID(ctx, in.PaymentMethodID)
	if err == repo.ErrNotFound {
		return CommissionAccountOutput{}, NewHTTPError(http.StatusBadRequest, "payment method not found")
	}
	if err != nil {
		return CommissionAccountOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err = u.settings.Upsert(ctx, model.Setting{
		Key:             model.SettingCommissionPaymentMethod,
		PaymentMethodID: in.PaymentMethodID,
		AccountName:     in.AccountName,
		AccountNumber:   in.AccountNumber,
	})
	if err != nil {
		return CommissionAccountOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return CommissionAccountOutput{
		PaymentMethodID: in.PaymentMethodID,
		MethodName:      m.Name,
		AccountName:     in.AccountName,
		AccountNumber:   in.AccountNumber,
	}, nil
}
