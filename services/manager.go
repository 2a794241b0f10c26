package services

import (
	"teentops_server/database"
	"teentops_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService   *CacheService
	EmailService   *EmailService
	HealthService  *HealthService
	CatalogService *CatalogService
	OrderService   *OrderService
	ReviewService  *ReviewService
	ContactService *ContactService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db)
	catalogService := NewCatalogService(logger, db)
	orderService := NewOrderService(logger, cfg, db, emailService)
	reviewService := NewReviewService(logger, db)
	contactService := NewContactService(logger, cfg, db, emailService)

	return &ServiceManager{
		CacheService:   cacheService,
		EmailService:   emailService,
		HealthService:  healthService,
		CatalogService: catalogService,
		OrderService:   orderService,
		ReviewService:  reviewService,
		ContactService: contactService,
	}
}
