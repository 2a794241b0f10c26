package reviews

import (
	"teentops_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ReviewRoutesManager struct {
	logger        *gecho.Logger
	reviewService *services.ReviewService
}

func NewReviewRoutesManager(
	logger *gecho.Logger,
	reviewService *services.ReviewService,
) *ReviewRoutesManager {
	return &ReviewRoutesManager{
		logger:        logger,
		reviewService: reviewService,
	}
}

func (rrm *ReviewRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/reviews", rrm.FetchAllReviews)
	r.Get("/reviews/featured", rrm.FetchFeaturedReviews)
	r.Get("/reviews/product/{product_id}", rrm.FetchReviewsByProduct)
	r.Post("/reviews/create", rrm.CreateReview)
}
