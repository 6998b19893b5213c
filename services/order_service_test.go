package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/satyam-pandey/scan-to-order/models"
	"github.com/satyam-pandey/scan-to-order/services"
	"github.com/satyam-pandey/scan-to-order/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	return store.New(db, "")
}

// seedCatalog creates restaurant 5 with menu items 10 (9.00) and 11 (7.50).
func seedCatalog(t *testing.T, st *store.Store) {
	t.Helper()
	ctx := context.Background()

	owner := models.User{Name: "Owner", Email: "owner@example.com", Password: "x"}
	require.NoError(t, st.Insert(ctx, &owner))
	require.NoError(t, st.Insert(ctx, &models.Restaurant{ID: 5, Name: "Cafe", UserID: owner.ID}))
	require.NoError(t, st.Insert(ctx, &models.MenuItem{
		ID: 10, RestaurantID: 5, Name: "Burger", Price: 9.00, IsAvailable: true,
	}))
	require.NoError(t, st.Insert(ctx, &models.MenuItem{
		ID: 11, RestaurantID: 5, Name: "Fries", Price: 7.50, IsAvailable: true,
	}))
}

func countRows(t *testing.T, st *store.Store, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, st.DB().Model(model).Count(&count).Error)
	return count
}

func TestPlaceOrderSuccess(t *testing.T) {
	st := setupTestStore(t)
	seedCatalog(t, st)
	svc := services.NewOrderService(st)

	table := 3
	placed, err := svc.PlaceOrder(context.Background(), services.PlaceOrderInput{
		RestaurantID: 5,
		TableNumber:  &table,
		TotalAmount:  25.50,
		Items: []services.OrderLine{
			{MenuItemID: 10, Quantity: 2, Price: 9.00},
			{MenuItemID: 11, Quantity: 1, Price: 7.50},
		},
	})
	require.NoError(t, err)

	assert.NotZero(t, placed.OrderID)
	assert.False(t, placed.CreatedAt.IsZero())
	assert.Equal(t, "pending", placed.Status)
	assert.Equal(t, 2, placed.ItemsCount)

	var order models.Order
	require.NoError(t, st.DB().Preload("Items").First(&order, placed.OrderID).Error)
	assert.Len(t, order.Items, 2, "read-back must return exactly the submitted item count")
	for _, item := range order.Items {
		assert.Equal(t, placed.OrderID, item.OrderID)
	}
}

func TestPlaceOrderKeepsCallerStatus(t *testing.T) {
	st := setupTestStore(t)
	seedCatalog(t, st)
	svc := services.NewOrderService(st)

	placed, err := svc.PlaceOrder(context.Background(), services.PlaceOrderInput{
		RestaurantID: 5,
		TotalAmount:  9.00,
		Status:       "confirmed",
		Items:        []services.OrderLine{{MenuItemID: 10, Quantity: 1, Price: 9.00}},
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", placed.Status)
}

func TestPlaceOrderUnknownMenuItem(t *testing.T) {
	st := setupTestStore(t)
	seedCatalog(t, st)
	svc := services.NewOrderService(st)

	_, err := svc.PlaceOrder(context.Background(), services.PlaceOrderInput{
		RestaurantID: 5,
		TotalAmount:  25.50,
		Items: []services.OrderLine{
			{MenuItemID: 10, Quantity: 2, Price: 9.00},
			{MenuItemID: 99, Quantity: 1, Price: 7.50},
		},
	})
	assert.ErrorIs(t, err, services.ErrUnknownMenuItem)
	assert.True(t, services.IsValidation(err))

	assert.Zero(t, countRows(t, st, &models.Order{}), "no order row may survive a rejected batch")
	assert.Zero(t, countRows(t, st, &models.OrderItem{}))
}

func TestPlaceOrderEmpty(t *testing.T) {
	st := setupTestStore(t)
	seedCatalog(t, st)
	svc := services.NewOrderService(st)

	_, err := svc.PlaceOrder(context.Background(), services.PlaceOrderInput{
		RestaurantID: 5,
		TotalAmount:  0,
		Items:        nil,
	})
	assert.ErrorIs(t, err, services.ErrEmptyOrder)
	assert.Zero(t, countRows(t, st, &models.Order{}))
}

func TestPlaceOrderNonPositiveQuantity(t *testing.T) {
	st := setupTestStore(t)
	seedCatalog(t, st)
	svc := services.NewOrderService(st)

	_, err := svc.PlaceOrder(context.Background(), services.PlaceOrderInput{
		RestaurantID: 5,
		TotalAmount:  9.00,
		Items:        []services.OrderLine{{MenuItemID: 10, Quantity: 0, Price: 9.00}},
	})
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)
}

func TestPlaceOrderTotalMismatch(t *testing.T) {
	st := setupTestStore(t)
	seedCatalog(t, st)
	svc := services.NewOrderService(st)

	_, err := svc.PlaceOrder(context.Background(), services.PlaceOrderInput{
		RestaurantID: 5,
		TotalAmount:  20.00,
		Items: []services.OrderLine{
			{MenuItemID: 10, Quantity: 2, Price: 9.00},
			{MenuItemID: 11, Quantity: 1, Price: 7.50},
		},
	})
	assert.ErrorIs(t, err, services.ErrTotalMismatch)
	assert.Zero(t, countRows(t, st, &models.Order{}))
}

func TestPlaceOrderDuplicateMenuItemLines(t *testing.T) {
	st := setupTestStore(t)
	seedCatalog(t, st)
	svc := services.NewOrderService(st)

	// two lines for the same menu item are legal, validation is on the
	// distinct id set
	placed, err := svc.PlaceOrder(context.Background(), services.PlaceOrderInput{
		RestaurantID: 5,
		TotalAmount:  27.00,
		Items: []services.OrderLine{
			{MenuItemID: 10, Quantity: 2, Price: 9.00},
			{MenuItemID: 10, Quantity: 1, Price: 9.00},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, placed.ItemsCount)
}

func TestPlaceOrderRollsBackHeaderOnItemFailure(t *testing.T) {
	st := setupTestStore(t)
	seedCatalog(t, st)
	svc := services.NewOrderService(st)

	// force the line-item batch insert to fail after the header insert
	require.NoError(t, st.DB().Migrator().DropTable(&models.OrderItem{}))

	_, err := svc.PlaceOrder(context.Background(), services.PlaceOrderInput{
		RestaurantID: 5,
		TotalAmount:  9.00,
		Items:        []services.OrderLine{{MenuItemID: 10, Quantity: 1, Price: 9.00}},
	})
	require.Error(t, err)
	assert.False(t, services.IsValidation(err))

	assert.Zero(t, countRows(t, st, &models.Order{}), "failed placement must leave no order header")
}

func TestPlaceOrderConcurrentDistinctIDs(t *testing.T) {
	st := setupTestStore(t)
	seedCatalog(t, st)
	svc := services.NewOrderService(st)

	var wg sync.WaitGroup
	results := make([]*services.PlacedOrder, 2)
	errs := make([]error, 2)

	inputs := []services.PlaceOrderInput{
		{
			RestaurantID: 5,
			TotalAmount:  18.00,
			Items:        []services.OrderLine{{MenuItemID: 10, Quantity: 2, Price: 9.00}},
		},
		{
			RestaurantID: 5,
			TotalAmount:  7.50,
			Items:        []services.OrderLine{{MenuItemID: 11, Quantity: 1, Price: 7.50}},
		},
	}

	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.PlaceOrder(context.Background(), inputs[i])
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.NotEqual(t, results[0].OrderID, results[1].OrderID)
	assert.Equal(t, int64(2), countRows(t, st, &models.Order{}))
}
