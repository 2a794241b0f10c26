package services_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"teentops_server/api/orders"
	"teentops_server/database"
	"teentops_server/lib"
	"teentops_server/services"
	"teentops_server/structs"
	"teentops_server/structs/tables"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// setupOrderStore starts a throwaway PostgreSQL container and returns a
// connected store with the order schema in place. Skips when no Docker
// daemon is available.
func setupOrderStore(t *testing.T) (*database.DB, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Skipf("skipping, docker is not available: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	db := &database.DB{DB: bun.NewDB(sqldb, pgdialect.New())}

	createOrderSchema(t, db)

	cleanup := func() {
		db.Close()
		_ = pgContainer.Terminate(ctx)
	}
	return db, cleanup
}

func createOrderSchema(t *testing.T, db *database.DB) {
	t.Helper()

	schema := `
		CREATE TABLE categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			slug TEXT NOT NULL UNIQUE,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE products (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL,
			category_id UUID NOT NULL REFERENCES categories(id),
			base_price BIGINT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE product_variants (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			product_id UUID NOT NULL REFERENCES products(id),
			size TEXT NOT NULL,
			color TEXT NOT NULL,
			sku TEXT NOT NULL UNIQUE,
			price_modifier BIGINT NOT NULL DEFAULT 0,
			stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		);
		CREATE TABLE orders (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			order_id UUID NOT NULL UNIQUE,
			customer_name TEXT NOT NULL,
			customer_email TEXT,
			customer_phone TEXT NOT NULL,
			address_line_1 TEXT NOT NULL,
			address_line_2 TEXT,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			postal_code TEXT NOT NULL,
			country TEXT NOT NULL DEFAULT 'Pakistan',
			status TEXT NOT NULL DEFAULT 'pending',
			total_amount BIGINT NOT NULL,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE order_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			order_id UUID NOT NULL REFERENCES orders(id),
			variant_id UUID NOT NULL REFERENCES product_variants(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price BIGINT NOT NULL,
			UNIQUE (order_id, variant_id)
		);
	`

	_, err := db.ExecContext(context.Background(), schema)
	require.NoError(t, err)
}

func seedProduct(t *testing.T, db *database.DB, basePrice uint64) tables.Product {
	t.Helper()
	ctx := context.Background()

	category := tables.Category{
		ID:   uuid.New(),
		Name: "Hoodies",
		Slug: "hoodies",
	}
	_, err := db.NewInsert().Model(&category).Exec(ctx)
	require.NoError(t, err)

	product := tables.Product{
		ID:          uuid.New(),
		Name:        "Oversized Hoodie",
		Slug:        "oversized-hoodie",
		Description: "Relaxed fit hoodie",
		CategoryID:  category.ID,
		BasePrice:   basePrice,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	_, err = db.NewInsert().Model(&product).Exec(ctx)
	require.NoError(t, err)

	return product
}

func seedVariant(t *testing.T, db *database.DB, product tables.Product, sku string, modifier int64, stock int) tables.ProductVariant {
	t.Helper()

	variant := tables.ProductVariant{
		ID:            uuid.New(),
		ProductID:     product.ID,
		Size:          structs.SizeM,
		Color:         structs.ColorBlack,
		SKU:           sku,
		PriceModifier: modifier,
		StockQuantity: stock,
		IsActive:      true,
	}
	_, err := db.NewInsert().Model(&variant).Exec(context.Background())
	require.NoError(t, err)

	return variant
}

func newTestOrderService(db *database.DB) *services.OrderService {
	logger := gecho.NewDefaultLogger()
	cfg := &structs.Config{
		Email:   &structs.EmailConfig{},
		Contact: &structs.ContactInfoConfig{Email: "info@teentops.pk"},
	}
	return services.NewOrderService(logger, cfg, db, services.NewEmailService(logger, cfg))
}

func orderRequest(items ...structs.OrderItemRequest) *structs.OrderRequest {
	return &structs.OrderRequest{
		CustomerName:  "Ayesha Khan",
		CustomerPhone: "+92 300 1234567",
		AddressLine1:  "12 Mall Road",
		City:          "Lahore",
		State:         "Punjab",
		PostalCode:    "54000",
		Items:         items,
	}
}

func variantStock(t *testing.T, db *database.DB, id uuid.UUID) int {
	t.Helper()

	variant, err := database.Query[tables.ProductVariant](db).
		Where("pv.id", id).
		First(context.Background())
	require.NoError(t, err)
	require.NotNil(t, variant)
	return variant.StockQuantity
}

func TestCreateOrderDecrementsStockPerVariant(t *testing.T) {
	db, cleanup := setupOrderStore(t)
	defer cleanup()

	ctx := context.Background()
	product := seedProduct(t, db, 2500)
	hoodieM := seedVariant(t, db, product, "HOOD-M-BLK", 300, 5)
	hoodieL := seedVariant(t, db, product, "HOOD-L-BLK", -200, 4)

	svc := newTestOrderService(db)

	order, err := svc.CreateOrderFromRequest(ctx, orderRequest(
		structs.OrderItemRequest{VariantID: hoodieM.ID, Quantity: 2},
		structs.OrderItemRequest{VariantID: hoodieL.ID, Quantity: 3},
	))
	require.NoError(t, err)
	require.NotNil(t, order)

	// 2 × (2500+300) + 3 × (2500−200)
	assert.Equal(t, uint64(12500), order.TotalAmount)
	assert.Equal(t, tables.OrderStatusPending, order.Status)
	assert.Equal(t, "Pakistan", order.Country)

	assert.Equal(t, 3, variantStock(t, db, hoodieM.ID))
	assert.Equal(t, 1, variantStock(t, db, hoodieL.ID))

	fetched, err := svc.GetOrderByOrderID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Len(t, fetched.Items, 2)
	assert.Equal(t, order.TotalAmount, fetched.TotalAmount)
}

func TestCreateOrderRollsBackWhenALineLacksStock(t *testing.T) {
	db, cleanup := setupOrderStore(t)
	defer cleanup()

	ctx := context.Background()
	product := seedProduct(t, db, 2500)
	plenty := seedVariant(t, db, product, "HOOD-M-BLK", 0, 10)
	scarce := seedVariant(t, db, product, "HOOD-L-BLK", 0, 1)

	svc := newTestOrderService(db)

	_, err := svc.CreateOrderFromRequest(ctx, orderRequest(
		structs.OrderItemRequest{VariantID: plenty.ID, Quantity: 2},
		structs.OrderItemRequest{VariantID: scarce.ID, Quantity: 5},
	))

	var stockErr *lib.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "HOOD-L-BLK", stockErr.SKU)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)

	// The whole operation rolled back: nothing persisted, no stock touched
	assert.Equal(t, 10, variantStock(t, db, plenty.ID))
	assert.Equal(t, 1, variantStock(t, db, scarce.ID))

	orderCount, err := database.Query[tables.Order](db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, orderCount)

	itemCount, err := database.Query[tables.OrderItem](db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, itemCount)
}

func TestConcurrentOrdersDoNotOversell(t *testing.T) {
	db, cleanup := setupOrderStore(t)
	defer cleanup()

	ctx := context.Background()
	product := seedProduct(t, db, 2500)
	variant := seedVariant(t, db, product, "HOOD-M-BLK", 0, 5)

	svc := newTestOrderService(db)

	const attempts = 12
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateOrderFromRequest(ctx, orderRequest(
				structs.OrderItemRequest{VariantID: variant.ID, Quantity: 1},
			))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		var stockErr *lib.InsufficientStockError
		assert.ErrorAs(t, err, &stockErr)
	}

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 0, variantStock(t, db, variant.ID))

	orderCount, err := database.Query[tables.Order](db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, orderCount)
}

func TestCreateOrderEndpointRespondsCreated(t *testing.T) {
	db, cleanup := setupOrderStore(t)
	defer cleanup()

	product := seedProduct(t, db, 2500)
	variant := seedVariant(t, db, product, "HOOD-M-BLK", 0, 5)

	router := chi.NewRouter()
	orders.NewOrderRoutesManager(gecho.NewDefaultLogger(), newTestOrderService(db)).RegisterRoutes(router)

	body, err := json.Marshal(orderRequest(
		structs.OrderItemRequest{VariantID: variant.ID, Quantity: 1},
	))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/orders/create", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 4, variantStock(t, db, variant.ID))
}

func TestRetryTreatsDriverConstraintErrorsAsPermanent(t *testing.T) {
	db, cleanup := setupOrderStore(t)
	defer cleanup()

	ctx := context.Background()
	product := seedProduct(t, db, 2500)
	seedVariant(t, db, product, "HOOD-M-BLK", 0, 5)

	config := database.DefaultRetryConfig()
	config.MaxAttempts = 3
	config.InitialDelay = time.Millisecond

	attempts := 0
	err := database.RetryWithBackoff(ctx, config, func() error {
		attempts++
		duplicate := tables.ProductVariant{
			ID:        uuid.New(),
			ProductID: product.ID,
			Size:      structs.SizeL,
			Color:     structs.ColorBlack,
			SKU:       "HOOD-M-BLK",
		}
		_, insertErr := db.NewInsert().Model(&duplicate).Exec(ctx)
		return insertErr
	})

	require.Error(t, err)
	assert.True(t, lib.IsUniqueViolation(err))
	assert.Equal(t, 1, attempts, "constraint violations must not be retried")
}
