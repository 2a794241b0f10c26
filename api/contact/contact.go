package contact

import (
	"errors"
	"net/http"
	"teentops_server/lib"
	"teentops_server/structs"

	"github.com/MonkyMars/gecho"
)

func (crm *ContactRoutesManager) SubmitContact(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ContactRequest](r)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.contact.invalidRequestBody"),
				gecho.WithData(ve.FieldMap()),
				gecho.Send(),
			)
			return
		}

		gecho.BadRequest(w,
			gecho.WithMessage("error.contact.invalidRequestBody"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	contact, err := crm.contactService.CreateContact(r.Context(), body)
	if err != nil {
		crm.logger.Error("Failed to store contact submission", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.contact.submissionFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("success.contact.submitted"),
		gecho.WithData(map[string]any{
			"id": contact.ID,
		}),
		gecho.Send(),
	)
}

// GetContactInfo serves the fixed shop contact details
func (crm *ContactRoutesManager) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(crm.contactService.ContactInfo()),
		gecho.Send(),
	)
}
