package lib

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// VariantNotFoundError is returned when an order references a variant that
// does not exist or is no longer purchasable.
type VariantNotFoundError struct {
	VariantID uuid.UUID
}

func (e *VariantNotFoundError) Error() string {
	return fmt.Sprintf("product variant %s not found or unavailable", e.VariantID)
}

// InsufficientStockError is returned when an order asks for more units than
// a variant has in stock. Available reflects the stock at the time of the check.
type InsufficientStockError struct {
	VariantID uuid.UUID
	SKU       string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.SKU, e.Requested, e.Available)
}

// InvalidStatusTransitionError is returned when an order status update does
// not follow the allowed lifecycle.
type InvalidStatusTransitionError struct {
	From string
	To   string
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %q to %q", e.From, e.To)
}

// MapPgError maps PostgreSQL driver errors to sentinel errors
func MapPgError(err error) error {
	switch sqlState(err) {
	case "23505": // unique_violation
		return ErrConflict
	case "P0002": // no_data_found
		return ErrNotFound
	}
	return err
}

// IsUniqueViolation reports whether the error is a unique constraint violation
func IsUniqueViolation(err error) bool {
	return sqlState(err) == "23505"
}

// IsForeignKeyViolation reports whether the error is a foreign key violation
func IsForeignKeyViolation(err error) bool {
	return sqlState(err) == "23503"
}

func sqlState(err error) string {
	var driverErr pgdriver.Error
	if errors.As(err, &driverErr) {
		return driverErr.Field('C')
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
