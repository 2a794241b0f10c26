package orders

import (
	"errors"
	"net/http"
	"teentops_server/lib"
	"teentops_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.order.invalidRequestBody"),
				gecho.WithData(ve.FieldMap()),
				gecho.Send(),
			)
			return
		}

		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidRequestBody"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.CreateOrderFromRequest(r.Context(), body)
	if err != nil {
		var variantErr *lib.VariantNotFoundError
		if errors.As(err, &variantErr) {
			gecho.NotFound(w,
				gecho.WithMessage("error.order.variantUnavailable"),
				gecho.WithData(map[string]string{
					"variant_id": variantErr.VariantID.String(),
					"error":      variantErr.Error(),
				}),
				gecho.Send(),
			)
			return
		}

		var stockErr *lib.InsufficientStockError
		if errors.As(err, &stockErr) {
			gecho.Conflict(w,
				gecho.WithMessage("error.order.insufficientStock"),
				gecho.WithData(map[string]any{
					"variant_id": stockErr.VariantID.String(),
					"sku":        stockErr.SKU,
					"requested":  stockErr.Requested,
					"available":  stockErr.Available,
				}),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Failed to create order", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.creationFailed"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("success.order.created"),
		gecho.WithData(map[string]any{
			"order_id":     order.OrderID,
			"status":       order.Status,
			"total_amount": order.TotalAmount,
			"items":        order.Items,
		}),
		gecho.Send(),
	)
}
