package reviews

import (
	"errors"
	"net/http"
	"teentops_server/lib"
	"teentops_server/structs"

	"github.com/MonkyMars/gecho"
)

func (rrm *ReviewRoutesManager) CreateReview(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ReviewRequest](r)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.review.invalidRequestBody"),
				gecho.WithData(ve.FieldMap()),
				gecho.Send(),
			)
			return
		}

		gecho.BadRequest(w,
			gecho.WithMessage("error.review.invalidRequestBody"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	review, err := rrm.reviewService.CreateReview(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.WithData(map[string]string{"product_id": body.ProductID.String()}),
				gecho.Send(),
			)
			return
		}

		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w,
				gecho.WithMessage("error.review.alreadyReviewed"),
				gecho.WithData(map[string]string{
					"product_id":     body.ProductID.String(),
					"customer_email": body.CustomerEmail,
				}),
				gecho.Send(),
			)
			return
		}

		rrm.logger.Error("Failed to create review", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.review.creationFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("success.review.created"),
		gecho.WithData(map[string]any{
			"review": review,
		}),
		gecho.Send(),
	)
}
