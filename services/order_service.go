package services

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/satyam-pandey/scan-to-order/models"
	"github.com/satyam-pandey/scan-to-order/store"
)

// defaultUnitOfWorkTimeout bounds each transactional unit of work. Expiry
// rolls back and surfaces as store.ErrUnavailable.
const defaultUnitOfWorkTimeout = 10 * time.Second

type OrderLine struct {
	MenuItemID uint
	Quantity   int
	Price      float64
}

type PlaceOrderInput struct {
	RestaurantID uint
	TableNumber  *int
	TotalAmount  float64
	Status       string
	Items        []OrderLine
}

type PlacedOrder struct {
	OrderID    uint
	CreatedAt  time.Time
	Status     string
	ItemsCount int
}

// OrderService owns the order-placement workflow: validate the request
// against the catalog, then write the order header and all of its line
// items in one unit of work.
type OrderService struct {
	store   *store.Store
	timeout time.Duration
}

func NewOrderService(st *store.Store) *OrderService {
	return &OrderService{store: st, timeout: defaultUnitOfWorkTimeout}
}

// PlaceOrder creates an order and its line items atomically. Either the
// header plus every submitted item is committed, or nothing is. Validation
// runs before the transaction opens, so business-rule rejections never need
// a rollback.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlacedOrder, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Batch existence check: all distinct menu item ids must resolve, or the
	// whole order is rejected before any row is written.
	distinct := distinctMenuItemIDs(in.Items)
	var found int64
	if err := s.store.DB().WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id IN ?", distinct).
		Count(&found).Error; err != nil {
		return nil, store.Classify(err)
	}
	if found != int64(len(distinct)) {
		return nil, ErrUnknownMenuItem
	}

	if !totalsMatch(in.TotalAmount, in.Items) {
		return nil, ErrTotalMismatch
	}

	status := in.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	order := models.Order{
		RestaurantID: in.RestaurantID,
		TableNumber:  in.TableNumber,
		TotalAmount:  in.TotalAmount,
		Status:       status,
	}

	err := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if order.ID == 0 {
			return ErrOrderIDAllocation
		}

		items := make([]models.OrderItem, 0, len(in.Items))
		for _, line := range in.Items {
			items = append(items, models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				Price:      line.Price,
			})
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}

	return &PlacedOrder{
		OrderID:    order.ID,
		CreatedAt:  order.CreatedAt,
		Status:     order.Status,
		ItemsCount: len(in.Items),
	}, nil
}

func distinctMenuItemIDs(items []OrderLine) []uint {
	seen := make(map[uint]bool, len(items))
	ids := make([]uint, 0, len(items))
	for _, line := range items {
		if !seen[line.MenuItemID] {
			seen[line.MenuItemID] = true
			ids = append(ids, line.MenuItemID)
		}
	}
	return ids
}

// totalsMatch compares the caller-supplied total with the sum of
// price x quantity over the line items, in whole cents.
func totalsMatch(total float64, items []OrderLine) bool {
	var sum int64
	for _, line := range items {
		sum += cents(line.Price) * int64(line.Quantity)
	}
	return cents(total) == sum
}

func cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
