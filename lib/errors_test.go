package lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPgError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	assert.ErrorIs(t, MapPgError(unique), ErrConflict)

	noData := &pgconn.PgError{Code: "P0002"}
	assert.ErrorIs(t, MapPgError(noData), ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, MapPgError(other))

	assert.Nil(t, MapPgError(nil))
}

func TestMapPgErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, MapPgError(wrapped), ErrConflict)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}

func TestTypedErrorMessages(t *testing.T) {
	variantID := uuid.New()

	notFound := &VariantNotFoundError{VariantID: variantID}
	assert.Contains(t, notFound.Error(), variantID.String())

	stock := &InsufficientStockError{SKU: "TT-HD-BLK-M", Requested: 4, Available: 1}
	assert.Equal(t, "insufficient stock for TT-HD-BLK-M: requested 4, available 1", stock.Error())

	transition := &InvalidStatusTransitionError{From: "delivered", To: "pending"}
	assert.Equal(t, `cannot transition order from "delivered" to "pending"`, transition.Error())
}

func TestTypedErrorsMatchWithErrorsAs(t *testing.T) {
	var target *InsufficientStockError
	err := fmt.Errorf("order failed: %w", &InsufficientStockError{SKU: "TT-1", Requested: 2, Available: 0})
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "TT-1", target.SKU)
}
