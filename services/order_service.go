package services

import (
	"context"
	"fmt"
	"runtime/debug"
	"teentops_server/database"
	"teentops_server/lib"
	"teentops_server/structs"
	"teentops_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type OrderService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	emailService *EmailService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	emailService *EmailService,
) *OrderService {
	return &OrderService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		emailService: emailService,
	}
}

// CreateOrderFromRequest places an order: it locks the requested variants,
// validates availability, snapshots prices, decrements stock, and persists the
// order with its lines in a single transaction. On any failure the store is
// left unchanged and the caller may correct and resubmit.
func (os *OrderService) CreateOrderFromRequest(ctx context.Context, req *structs.OrderRequest) (order *tables.Order, err error) {
	startTime := time.Now()

	items := mergeItemRequests(req.Items)

	tx, err := os.db.BeginTx(ctx, nil)
	if err != nil {
		os.logger.Error("Failed to begin transaction", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			stackTrace := string(debug.Stack())
			os.logger.Error(fmt.Sprintf("PANIC RECOVERED: %v", p),
				gecho.Field("panic_value", p),
				gecho.Field("stack_trace", stackTrace))
			tx.Rollback()
			err = fmt.Errorf("panic recovered: %v", p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	// Lock the requested variant rows for the duration of the transaction.
	// Concurrent orders against the same variant serialize here, which is
	// what keeps stock from going negative under contention.
	variantIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		variantIDs[i] = item.VariantID
	}

	var variants []tables.ProductVariant
	err = tx.NewSelect().
		Model(&variants).
		Relation("Product").
		Where("pv.id IN (?)", bun.In(variantIDs)).
		For("UPDATE OF pv").
		Scan(ctx)
	if err != nil {
		os.logger.Error("Failed to lock variants", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}

	variantMap := make(map[uuid.UUID]*tables.ProductVariant, len(variants))
	for i := range variants {
		variantMap[variants[i].ID] = &variants[i]
	}

	country := req.Country
	if country == "" {
		country = "Pakistan"
	}

	orderID := uuid.New()
	order = &tables.Order{
		ID:            uuid.New(),
		OrderID:       orderID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Country:       country,
		Status:        tables.OrderStatusPending,
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	orderItems, total, err := assembleOrderItems(order.ID, items, variantMap)
	if err != nil {
		return nil, err
	}
	order.TotalAmount = total

	_, err = tx.NewInsert().Model(order).Exec(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	_, err = tx.NewInsert().Model(&orderItems).Exec(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	// Conditional decrement as a second line of defence: even if the lock
	// above were bypassed, stock can never be driven below zero.
	for _, item := range orderItems {
		res, decErr := tx.NewUpdate().
			Model((*tables.ProductVariant)(nil)).
			Set("stock_quantity = stock_quantity - ?", item.Quantity).
			Where("id = ? AND stock_quantity >= ?", item.VariantID, item.Quantity).
			Exec(ctx)
		if decErr != nil {
			err = lib.MapPgError(decErr)
			return nil, err
		}

		affected, _ := res.RowsAffected()
		if affected == 0 {
			variant := variantMap[item.VariantID]
			err = &lib.InsufficientStockError{
				VariantID: item.VariantID,
				SKU:       variant.SKU,
				Requested: item.Quantity,
				Available: variant.StockQuantity,
			}
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, lib.MapPgError(err)
	}

	// Attach the loaded variants so the confirmation email can name products
	for i := range orderItems {
		orderItems[i].Variant = variantMap[orderItems[i].VariantID]
	}
	order.Items = orderItems

	// Confirmation email goes out after commit; a delivery failure must not
	// fail the order, so it runs detached.
	if req.CustomerEmail != "" {
		go func(email, name string, o tables.Order) {
			if emailErr := os.emailService.SendOrderConfirmationEmail(email, name, &o); emailErr != nil {
				os.logger.Error("Failed to send order confirmation email",
					gecho.Field("error", emailErr),
					gecho.Field("order_id", o.OrderID))
			}
		}(req.CustomerEmail, req.CustomerName, *order)
	}

	os.logger.Info("Order created successfully",
		gecho.Field("order_id", orderID),
		gecho.Field("items", len(orderItems)),
		gecho.Field("total", total),
		gecho.Field("duration", time.Since(startTime)))
	return order, nil
}

// GetOrderByOrderID retrieves an order by its public identifier,
// including its lines and their variants.
func (os *OrderService) GetOrderByOrderID(ctx context.Context, orderID uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("o.order_id", orderID).
		Relation("Items").
		Relation("Items.Variant").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}

	return order, nil
}

// GetAllOrders retrieves orders for the admin console with optional status filtering
func (os *OrderService) GetAllOrders(ctx context.Context, status *tables.OrderStatus, limit, offset int) ([]tables.Order, int, error) {
	query := database.Query[tables.Order](os.db)

	if status != nil {
		query = query.Where("o.status", *status)
	}

	count, err := query.Count(ctx)
	if err != nil {
		return nil, 0, lib.MapPgError(err)
	}

	orders, err := query.
		Relation("Items").
		OrderBy("o.created_at", database.DESC).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, lib.MapPgError(err)
	}

	return orders, count, nil
}

// UpdateOrderStatus moves an order through its lifecycle. Transitions outside
// pending → confirmed → processing → shipped → delivered (with cancellation
// from pending/confirmed) are rejected.
func (os *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, newStatus tables.OrderStatus) (*tables.Order, error) {
	if !newStatus.IsValid() {
		return nil, &lib.InvalidStatusTransitionError{From: "", To: string(newStatus)}
	}

	order, err := database.Query[tables.Order](os.db).
		Where("o.order_id", orderID).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return nil, &lib.InvalidStatusTransitionError{
			From: string(order.Status),
			To:   string(newStatus),
		}
	}

	_, err = database.Query[tables.Order](os.db).
		Where("order_id", orderID).
		Update(ctx, map[string]any{
			"status":     newStatus,
			"updated_at": time.Now(),
		})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	os.logger.Info("Order status updated",
		gecho.Field("order_id", orderID),
		gecho.Field("old_status", order.Status),
		gecho.Field("new_status", newStatus))

	order.Status = newStatus
	return order, nil
}

// mergeItemRequests collapses duplicate variant lines into one, summing their
// quantities, preserving first-seen order.
func mergeItemRequests(items []structs.OrderItemRequest) []structs.OrderItemRequest {
	index := make(map[uuid.UUID]int, len(items))
	merged := make([]structs.OrderItemRequest, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.VariantID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.VariantID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

// assembleOrderItems turns requested lines into order items with price
// snapshots, validating availability against the locked variants. The total
// equals the sum of snapshot price × quantity across the returned lines.
func assembleOrderItems(orderID uuid.UUID, items []structs.OrderItemRequest, variants map[uuid.UUID]*tables.ProductVariant) ([]tables.OrderItem, uint64, error) {
	orderItems := make([]tables.OrderItem, 0, len(items))
	var total uint64

	for _, item := range items {
		variant, ok := variants[item.VariantID]
		if !ok || !variant.IsActive || variant.Product == nil || !variant.Product.IsActive {
			return nil, 0, &lib.VariantNotFoundError{VariantID: item.VariantID}
		}

		if variant.StockQuantity < item.Quantity {
			return nil, 0, &lib.InsufficientStockError{
				VariantID: variant.ID,
				SKU:       variant.SKU,
				Requested: item.Quantity,
				Available: variant.StockQuantity,
			}
		}

		price := variant.Price(variant.Product.BasePrice)
		orderItems = append(orderItems, tables.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			VariantID: variant.ID,
			Quantity:  item.Quantity,
			Price:     price,
		})
		total += price * uint64(item.Quantity)
	}

	return orderItems, total, nil
}
