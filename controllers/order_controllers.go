package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/satyam-pandey/scan-to-order/models"
	"github.com/satyam-pandey/scan-to-order/services"
	"github.com/satyam-pandey/scan-to-order/store"
	"github.com/satyam-pandey/scan-to-order/utils"
)

type OrderController struct {
	Store  *store.Store
	Orders *services.OrderService
}

func NewOrderController(st *store.Store) *OrderController {
	return &OrderController{
		Store:  st,
		Orders: services.NewOrderService(st),
	}
}

// CreateOrder -> place an order: header plus all line items, all or nothing.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type itemReq struct {
		MenuItemID uint    `json:"menu_item_id" binding:"required"`
		Quantity   int     `json:"quantity" binding:"required"`
		Price      float64 `json:"price" binding:"required"`
	}
	type reqBody struct {
		RestaurantID uint      `json:"restaurant_id" binding:"required"`
		TableNumber  *int      `json:"table_number"`
		TotalAmount  float64   `json:"total_amount" binding:"required"`
		Status       string    `json:"status"`
		OrderItems   []itemReq `json:"order_items"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	lines := make([]services.OrderLine, 0, len(body.OrderItems))
	for _, item := range body.OrderItems {
		lines = append(lines, services.OrderLine{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}

	placed, err := oc.Orders.PlaceOrder(c.Request.Context(), services.PlaceOrderInput{
		RestaurantID: body.RestaurantID,
		TableNumber:  body.TableNumber,
		TotalAmount:  body.TotalAmount,
		Status:       body.Status,
		Items:        lines,
	})
	if err != nil {
		if !services.IsValidation(err) {
			utils.ErrorLogger.Printf("order placement failed: %v", err)
		}
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", gin.H{
		"order_id":    placed.OrderID,
		"created_at":  placed.CreatedAt,
		"status":      placed.Status,
		"items_count": placed.ItemsCount,
	})
}

// GetOrderByID -> one order with its line items.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var order models.Order
	if err := oc.Store.DB().Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetAllOrders -> orders of one restaurant, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	q := oc.Store.DB().Preload("Items").Order("created_at desc")
	if rid := c.Query("restaurant_id"); rid != "" {
		q = q.Where("restaurant_id = ?", rid)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// DeleteOrder -> removes the order, its items go with it.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	deleted, err := oc.Store.DeleteWhere(c.Request.Context(), "orders", "id = ?", id)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	if len(deleted) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}
