package orders

import (
	"errors"
	"net/http"
	"teentops_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchOrder handles GET /orders/{order_id}. Lookup is by the public order
// UUID; the internal primary key is never exposed.
func (orm *OrderRoutesManager) FetchOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "order_id")
	orderID, err := uuid.Parse(idStr)
	if err != nil || orderID == uuid.Nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidOrderId"),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.GetOrderByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.order.notFound"),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Failed to fetch order", gecho.Field("order_id", orderID), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"order": order,
		}),
		gecho.Send(),
	)
}
