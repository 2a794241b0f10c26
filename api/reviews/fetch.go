package reviews

import (
	"errors"
	"net/http"
	"strconv"
	"teentops_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchAllReviews handles GET /reviews, listing approved reviews
func (rrm *ReviewRoutesManager) FetchAllReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := 1
	pageSize := 20

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if val, err := strconv.Atoi(pageStr); err == nil && val > 0 {
			page = val
		}
	}
	if pageSizeStr := r.URL.Query().Get("page_size"); pageSizeStr != "" {
		if val, err := strconv.Atoi(pageSizeStr); err == nil && val > 0 {
			pageSize = val
		}
	}

	result, err := rrm.reviewService.GetApprovedReviews(ctx, page, pageSize)
	if err != nil {
		rrm.logger.Error("Failed to fetch reviews", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.reviews.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"reviews":    result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// FetchFeaturedReviews handles GET /reviews/featured
func (rrm *ReviewRoutesManager) FetchFeaturedReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := rrm.reviewService.GetFeaturedReviews(r.Context())
	if err != nil {
		rrm.logger.Error("Failed to fetch featured reviews", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.reviews.failedToFetchFeatured"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"reviews": reviews,
		}),
		gecho.Send(),
	)
}

// FetchReviewsByProduct handles GET /reviews/product/{product_id}
func (rrm *ReviewRoutesManager) FetchReviewsByProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "product_id")
	productID, err := uuid.Parse(idStr)
	if err != nil || productID == uuid.Nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.reviews.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	reviews, err := rrm.reviewService.GetReviewsByProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.WithData(map[string]string{"product_id": productID.String()}),
				gecho.Send(),
			)
			return
		}

		rrm.logger.Error("Failed to fetch product reviews", gecho.Field("product_id", productID), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.reviews.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product_id": productID,
			"reviews":    reviews,
		}),
		gecho.Send(),
	)
}
