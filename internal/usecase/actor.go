package usecase

import (
	"encoding/base64"
	"math"
	"net/http"

	"app/internal/domain/model"
)

// Actor is the authenticated caller, passed explicitly into every operation.
// Ownership checks run against it before any side effect.
type Actor struct {
	ID   int64
	Role model.Role
}

func (a Actor) IsAdmin() bool  { return a.Role == model.RoleAdmin }
func (a Actor) IsSeller() bool { return a.Role == model.RoleSeller }
func (a Actor) IsBuyer() bool  { return a.Role == model.RoleBuyer }

const maxReceiptBytes = 5 << 20

// Receipts arrive base64-encoded; the 5MB cap applies to the decoded size
// and is checked before any state change.
func validateReceipt(receipt string) error {
	if receipt == "" {
		return nil
	}
	if base64.StdEncoding.DecodedLen(len(receipt)) > maxReceiptBytes {
		return NewHTTPError(http.StatusRequestEntityTooLarge, "receipt image exceeds 5MB")
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
