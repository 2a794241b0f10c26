package services

import (
	"context"
	"fmt"
	"teentops_server/database"
	"teentops_server/lib"
	"teentops_server/structs"
	"teentops_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ReviewService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewReviewService(logger *gecho.Logger, db *database.DB) *ReviewService {
	return &ReviewService{
		logger: logger,
		db:     db,
	}
}

// CreateReview stores a public review submission. One review per customer per
// product: a duplicate (product, customer_email) pair returns lib.ErrConflict,
// an unknown product returns lib.ErrNotFound.
func (rs *ReviewService) CreateReview(ctx context.Context, req *structs.ReviewRequest) (*tables.Review, error) {
	exists, err := database.Query[tables.Product](rs.db).
		Where("p.id", req.ProductID).
		Exists(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if !exists {
		return nil, lib.ErrNotFound
	}

	review := &tables.Review{
		ID:            uuid.New(),
		ProductID:     req.ProductID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Rating:        req.Rating,
		Title:         req.Title,
		ReviewText:    req.ReviewText,
		IsApproved:    true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	// The unique (product_id, customer_email) index is the arbiter for
	// duplicates; racing submissions surface as a conflict here.
	review, err = database.Query[tables.Review](rs.db).Insert(ctx, review)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			rs.logger.Warn("Duplicate review rejected",
				gecho.Field("product_id", req.ProductID),
				gecho.Field("customer_email", req.CustomerEmail))
			return nil, lib.ErrConflict
		}
		rs.logger.Error("Failed to create review", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}

	rs.logger.Info("Review created",
		gecho.Field("id", review.ID),
		gecho.Field("product_id", review.ProductID),
		gecho.Field("rating", review.Rating))
	return review, nil
}

// GetApprovedReviews lists approved reviews, newest first
func (rs *ReviewService) GetApprovedReviews(ctx context.Context, page, pageSize int) (*database.PaginationResult[tables.Review], error) {
	query := database.Query[tables.Review](rs.db).
		Where("r.is_approved", true).
		OrderBy("r.created_at", database.DESC)

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return result, nil
}

// GetFeaturedReviews lists approved reviews flagged as featured
func (rs *ReviewService) GetFeaturedReviews(ctx context.Context) ([]tables.Review, error) {
	reviews, err := database.Query[tables.Review](rs.db).
		Where("r.is_approved", true).
		Where("r.is_featured", true).
		OrderBy("r.created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured reviews: %w", err)
	}

	return reviews, nil
}

// GetReviewsByProduct lists approved reviews for one product.
// Returns lib.ErrNotFound when the product does not exist.
func (rs *ReviewService) GetReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]tables.Review, error) {
	exists, err := database.Query[tables.Product](rs.db).
		Where("p.id", productID).
		Exists(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if !exists {
		return nil, lib.ErrNotFound
	}

	reviews, err := database.Query[tables.Review](rs.db).
		Where("r.product_id", productID).
		Where("r.is_approved", true).
		OrderBy("r.created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product reviews: %w", err)
	}

	return reviews, nil
}
