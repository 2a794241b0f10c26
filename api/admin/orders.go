package admin

import (
	"errors"
	"net/http"
	"strconv"
	"teentops_server/lib"
	"teentops_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
}

// ListOrders handles GET /admin/orders with an optional status filter.
// Orders are not part of the generic resource set: their items are
// read-only and the only mutation allowed is a status transition.
func (arm *AdminRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if val, err := strconv.Atoi(limitStr); err == nil && val > 0 && val <= 100 {
			limit = val
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if val, err := strconv.Atoi(offsetStr); err == nil && val >= 0 {
			offset = val
		}
	}

	var status *tables.OrderStatus
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		candidate := tables.OrderStatus(statusStr)
		if !candidate.IsValid() {
			gecho.BadRequest(w,
				gecho.WithMessage("error.admin.invalidOrderStatus"),
				gecho.WithData(map[string]string{"status": statusStr}),
				gecho.Send(),
			)
			return
		}
		status = &candidate
	}

	orders, total, err := arm.orderService.GetAllOrders(r.Context(), status, limit, offset)
	if err != nil {
		arm.logger.Error("Failed to list orders", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.failedToListOrders"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orders,
			"total":  total,
			"limit":  limit,
			"offset": offset,
		}),
		gecho.Send(),
	)
}

// GetOrderDetails handles GET /admin/orders/{order_id}
func (arm *AdminRoutesManager) GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "order_id")
	orderID, err := uuid.Parse(idStr)
	if err != nil || orderID == uuid.Nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidOrderId"),
			gecho.Send(),
		)
		return
	}

	order, err := arm.orderService.GetOrderByOrderID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.admin.orderNotFound"),
				gecho.WithData(map[string]string{"order_id": orderID.String()}),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to fetch order", gecho.Field("order_id", orderID), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.failedToFetchOrder"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"order": order}),
		gecho.Send(),
	)
}

// UpdateOrderStatus handles PUT /admin/orders/{order_id}/status. Only
// transitions allowed by the order status machine go through.
func (arm *AdminRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "order_id")
	orderID, err := uuid.Parse(idStr)
	if err != nil || orderID == uuid.Nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidOrderId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[UpdateOrderStatusRequest](r)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.admin.invalidRequestBody"),
				gecho.WithData(ve.FieldMap()),
				gecho.Send(),
			)
			return
		}

		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidRequestBody"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	order, err := arm.orderService.UpdateOrderStatus(r.Context(), orderID, tables.OrderStatus(body.Status))
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.admin.orderNotFound"),
				gecho.WithData(map[string]string{"order_id": orderID.String()}),
				gecho.Send(),
			)
			return
		}

		var transitionErr *lib.InvalidStatusTransitionError
		if errors.As(err, &transitionErr) {
			gecho.Conflict(w,
				gecho.WithMessage("error.admin.invalidStatusTransition"),
				gecho.WithData(map[string]string{
					"from": string(transitionErr.From),
					"to":   string(transitionErr.To),
				}),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to update order status",
			gecho.Field("order_id", orderID),
			gecho.Field("status", body.Status),
			gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.failedToUpdateOrderStatus"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.orderStatusUpdated"),
		gecho.WithData(map[string]any{
			"order_id": order.OrderID,
			"status":   order.Status,
		}),
		gecho.Send(),
	)
}
