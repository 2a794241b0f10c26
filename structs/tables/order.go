package tables

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	// Table name and identifiers
	tableName struct{}  `bun:"table:orders,alias:o"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"-"`
	// OrderID is the opaque identifier exposed to customers. The internal
	// primary key never leaves the API boundary.
	OrderID uuid.UUID `bun:"order_id,notnull,unique,type:uuid" json:"order_id"`

	// Customer contact
	CustomerName  string `bun:"customer_name,notnull" json:"customer_name" validate:"required,min=2,max=200"`
	CustomerEmail string `bun:"customer_email" json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone string `bun:"customer_phone,notnull" json:"customer_phone" validate:"required,min=7,max=20"`

	// Delivery address
	AddressLine1 string `bun:"address_line_1,notnull" json:"address_line_1" validate:"required,max=255"`
	AddressLine2 string `bun:"address_line_2" json:"address_line_2,omitempty" validate:"omitempty,max=255"`
	City         string `bun:"city,notnull" json:"city" validate:"required,max=100"`
	State        string `bun:"state,notnull" json:"state" validate:"required,max=100"`
	PostalCode   string `bun:"postal_code,notnull" json:"postal_code" validate:"required,max=20"`
	Country      string `bun:"country,notnull,default:'Pakistan'" json:"country" validate:"omitempty,max=100"`

	// Order data
	Status      OrderStatus `bun:"status,notnull,default:'pending'" json:"status"`
	TotalAmount uint64      `bun:"total_amount,notnull" json:"total_amount"` // cents, Σ(item price × quantity)
	Notes       string      `bun:"notes" json:"notes,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Items []OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
}

// FullAddress joins the non-empty address parts for display.
func (o *Order) FullAddress() string {
	parts := []string{o.AddressLine1, o.AddressLine2, o.City, o.State, o.PostalCode, o.Country}
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += p
	}
	return out
}

// TotalItems is the total ordered quantity across all lines.
func (o *Order) TotalItems() int {
	total := 0
	for i := range o.Items {
		total += o.Items[i].Quantity
	}
	return total
}

type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderID   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"-"`
	VariantID uuid.UUID `bun:"variant_id,notnull,type:uuid" json:"variant_id"`
	Quantity  int       `bun:"quantity,notnull" json:"quantity" validate:"required,min=1"`

	// Price is the variant's effective price at order time, in cents.
	// It never changes after creation, regardless of later catalog edits.
	Price uint64 `bun:"price,notnull" json:"price"`

	Variant *ProductVariant `bun:"rel:belongs-to,join:variant_id=id" json:"variant,omitempty"`
}

// TotalPrice is the line total: snapshot price × quantity.
func (oi *OrderItem) TotalPrice() uint64 {
	return oi.Price * uint64(oi.Quantity)
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderStatusTransitions defines the forward-only progression
// pending → confirmed → processing → shipped → delivered, with
// cancellation possible while the order is still pending or confirmed.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
