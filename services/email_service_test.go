package services

import (
	"teentops_server/structs"
	"teentops_server/structs/tables"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testEmailService(apiKey string) *EmailService {
	return &EmailService{
		logger: gecho.NewDefaultLogger(),
		cfg: &structs.Config{
			Email:   &structs.EmailConfig{ApiKey: apiKey, From: "orders@teentops.pk"},
			Contact: &structs.ContactInfoConfig{Email: "info@teentops.pk"},
		},
	}
}

func TestSendEmailDisabledWithoutApiKey(t *testing.T) {
	// No client is set; a regression past the guard would panic here
	es := testEmailService("")

	err := es.SendEmail([]string{"customer@example.com"}, "Order confirmation", "<p>hi</p>")
	assert.NoError(t, err)
}

func TestSendOrderConfirmationEmailDisabledWithoutApiKey(t *testing.T) {
	es := testEmailService("")

	order := &tables.Order{
		OrderID:       uuid.New(),
		CustomerPhone: "+92 300 1234567",
		TotalAmount:   5600,
		Items: []tables.OrderItem{
			{ID: uuid.New(), VariantID: uuid.New(), Quantity: 2, Price: 2800},
		},
	}

	err := es.SendOrderConfirmationEmail("customer@example.com", "Ayesha", order)
	assert.NoError(t, err)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00 TND", formatCents(0))
	assert.Equal(t, "28.00 TND", formatCents(2800))
	assert.Equal(t, "28.05 TND", formatCents(2805))
}
