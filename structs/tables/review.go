package tables

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	tableName     struct{}  `bun:"table:reviews,alias:r"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID     uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id" validate:"required"`
	CustomerName  string    `bun:"customer_name,notnull" json:"customer_name" validate:"required,max=200"`
	CustomerEmail string    `bun:"customer_email,notnull" json:"customer_email" validate:"required,email"`
	Rating        int       `bun:"rating,notnull" json:"rating" validate:"required,min=1,max=5"`
	Title         string    `bun:"title,notnull" json:"title" validate:"required,max=200"`
	ReviewText    string    `bun:"review_text,notnull" json:"review_text" validate:"required"`
	// New reviews are visible immediately; moderation can only hide them
	// after the fact.
	IsApproved bool      `bun:"is_approved,notnull,default:true" json:"is_approved"`
	IsFeatured bool      `bun:"is_featured,notnull,default:false" json:"is_featured"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt  time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"-"`
}

// StarDisplay renders the rating as filled and empty stars.
func (r *Review) StarDisplay() string {
	rating := r.Rating
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
