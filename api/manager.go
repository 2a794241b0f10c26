package api

import (
	"teentops_server/api/admin"
	"teentops_server/api/contact"
	"teentops_server/api/health"
	"teentops_server/api/orders"
	"teentops_server/api/products"
	"teentops_server/api/reviews"
	"teentops_server/database"
	"teentops_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// routerManager aggregates all route managers for the application
type routerManager struct {
	productRoutes *products.ProductRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	reviewRoutes  *reviews.ReviewRoutesManager
	contactRoutes *contact.ContactRoutesManager
	adminRoutes   *admin.AdminRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, db *database.DB, sm *services.ServiceManager) *routerManager {
	return &routerManager{
		productRoutes: products.NewProductRoutesManager(logger, sm.CatalogService),
		orderRoutes:   orders.NewOrderRoutesManager(logger, sm.OrderService),
		reviewRoutes:  reviews.NewReviewRoutesManager(logger, sm.ReviewService),
		contactRoutes: contact.NewContactRoutesManager(logger, sm.ContactService),
		adminRoutes:   admin.NewAdminRoutesManager(logger, db, sm.OrderService, sm.ContactService),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
	}
}

// RegisterRoutes registers every route group on the router
func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.reviewRoutes.RegisterRoutes(r)
	rm.contactRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
