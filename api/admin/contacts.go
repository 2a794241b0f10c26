package admin

import (
	"errors"
	"net/http"
	"teentops_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MarkContactRead handles PUT /admin/contacts/{id}/read
func (arm *AdminRoutesManager) MarkContactRead(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	contactID, err := uuid.Parse(idStr)
	if err != nil || contactID == uuid.Nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidRecordId"),
			gecho.Send(),
		)
		return
	}

	if err := arm.contactService.MarkContactRead(r.Context(), contactID); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.admin.recordNotFound"),
				gecho.WithData(map[string]string{"contact_id": contactID.String()}),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to mark contact as read",
			gecho.Field("contact_id", contactID),
			gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.failedToUpdate"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.contactMarkedRead"),
		gecho.Send(),
	)
}
