package admin

import (
	"teentops_server/database"
	"teentops_server/services"
	"teentops_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger         *gecho.Logger
	db             *database.DB
	orderService   *services.OrderService
	contactService *services.ContactService
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	db *database.DB,
	orderService *services.OrderService,
	contactService *services.ContactService,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		db:             db,
		orderService:   orderService,
		contactService: contactService,
	}
}

// RegisterRoutes mounts the admin console under /admin. The catalog
// tables, reviews and contacts share one generic resource mechanism;
// orders get dedicated handlers because their items are immutable and
// status changes go through the transition machine.
func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		newResource[tables.Category](arm.logger, arm.db, "categories",
			[]string{"name", "slug", "description"},
			"name", database.ASC,
		).register(r)

		newResource[tables.Product](arm.logger, arm.db, "products",
			[]string{"category_id", "name", "slug", "description", "base_price", "is_active", "featured"},
			"created_at", database.DESC,
		).register(r)

		newResource[tables.ProductImage](arm.logger, arm.db, "images",
			[]string{"product_id", "url", "alt_text", "color", "is_primary", "sort_order"},
			"sort_order", database.ASC,
		).register(r)

		newResource[tables.ProductVariant](arm.logger, arm.db, "variants",
			[]string{"product_id", "size", "color", "sku", "price_modifier", "stock_quantity", "is_active"},
			"sku", database.ASC,
		).register(r)

		newResource[tables.Review](arm.logger, arm.db, "reviews",
			[]string{"customer_name", "customer_email", "rating", "title", "review_text", "is_approved", "is_featured"},
			"created_at", database.DESC,
		).register(r)

		// Contacts come in through the public form; the console only
		// reads, deletes and flags them.
		newResource[tables.Contact](arm.logger, arm.db, "contacts",
			nil,
			"created_at", database.DESC,
		).register(r)
		r.Put("/contacts/{id}/read", arm.MarkContactRead)

		r.Get("/orders", arm.ListOrders)
		r.Get("/orders/{order_id}", arm.GetOrderDetails)
		r.Put("/orders/{order_id}/status", arm.UpdateOrderStatus)
	})
}
