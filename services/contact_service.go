package services

import (
	"context"
	"teentops_server/database"
	"teentops_server/lib"
	"teentops_server/structs"
	"teentops_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ContactService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	emailService *EmailService
}

func NewContactService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, emailService *EmailService) *ContactService {
	return &ContactService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		emailService: emailService,
	}
}

// CreateContact stores a contact form submission and forwards it to the shop
// inbox. Submission always succeeds when the required fields validate; the
// notification email is best-effort.
func (cs *ContactService) CreateContact(ctx context.Context, req *structs.ContactRequest) (*tables.Contact, error) {
	contact := &tables.Contact{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	contact, err := database.Query[tables.Contact](cs.db).Insert(ctx, contact)
	if err != nil {
		cs.logger.Error("Failed to store contact submission", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}

	go func(c tables.Contact) {
		if emailErr := cs.emailService.SendContactNotificationEmail(&c); emailErr != nil {
			cs.logger.Error("Failed to forward contact submission",
				gecho.Field("error", emailErr),
				gecho.Field("contact_id", c.ID))
		}
	}(*contact)

	cs.logger.Info("Contact submission stored",
		gecho.Field("id", contact.ID),
		gecho.Field("subject", contact.Subject))
	return contact, nil
}

// ContactInfo returns the fixed shop contact details from configuration
func (cs *ContactService) ContactInfo() *structs.ContactInfoConfig {
	return cs.cfg.Contact
}

// MarkContactRead flags a submission as handled in the admin console
func (cs *ContactService) MarkContactRead(ctx context.Context, id uuid.UUID) error {
	affected, err := database.UpdateByID[tables.Contact](cs.db, ctx, id, map[string]any{
		"is_read": true,
	})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}
