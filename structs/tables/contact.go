package tables

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	tableName struct{}  `bun:"table:contacts,alias:ct"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull" json:"name" validate:"required,max=200"`
	Email     string    `bun:"email,notnull" json:"email" validate:"required,email"`
	Phone     string    `bun:"phone" json:"phone,omitempty" validate:"omitempty,max=15"`
	Subject   string    `bun:"subject,notnull" json:"subject" validate:"required,max=200"`
	Message   string    `bun:"message,notnull" json:"message" validate:"required"`
	IsRead    bool      `bun:"is_read,notnull,default:false" json:"is_read"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
