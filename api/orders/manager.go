package orders

import (
	"teentops_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	orderService *services.OrderService,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/orders/create", orm.CreateOrder)
	r.Get("/orders/{order_id}", orm.FetchOrder)
}
