package structs

import "github.com/google/uuid"

// OrderItemRequest is one requested cart line: a variant and a quantity.
type OrderItemRequest struct {
	VariantID uuid.UUID `json:"variant_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type OrderRequest struct {
	// Customer contact
	CustomerName  string `json:"customer_name" validate:"required,min=2,max=200"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone" validate:"required,min=7,max=20"`

	// Delivery address
	AddressLine1 string `json:"address_line_1" validate:"required,max=255"`
	AddressLine2 string `json:"address_line_2" validate:"omitempty,max=255"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,max=100"`
	PostalCode   string `json:"postal_code" validate:"required,max=20"`
	Country      string `json:"country" validate:"omitempty,max=100"`

	Notes string `json:"notes" validate:"omitempty,max=1000"`

	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}
