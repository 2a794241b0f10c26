package structs

import "github.com/google/uuid"

type ReviewRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required,min=2,max=200"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	Rating        int       `json:"rating" validate:"required,min=1,max=5"`
	Title         string    `json:"title" validate:"required,max=200"`
	ReviewText    string    `json:"review_text" validate:"required"`
}
