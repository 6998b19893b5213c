package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satyam-pandey/scan-to-order/services"
	"github.com/satyam-pandey/scan-to-order/store"
	"github.com/satyam-pandey/scan-to-order/utils"
)

type RestaurantController struct {
	Store       *store.Store
	Restaurants *services.RestaurantService
}

func NewRestaurantController(st *store.Store) *RestaurantController {
	return &RestaurantController{
		Store:       st,
		Restaurants: services.NewRestaurantService(st),
	}
}

// CreateRestaurantWithMenu -> one unit of work: the restaurant row plus its
// initial menu items. Owner comes from the authenticated user.
func (rc *RestaurantController) CreateRestaurantWithMenu(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	type menuItemReq struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"required"`
		CategoryID  *uint   `json:"category_id"`
		ImageURL    *string `json:"image_url"`
		IsAvailable *bool   `json:"is_available"`
	}
	type reqBody struct {
		Name      string        `json:"name" binding:"required"`
		Address   *string       `json:"address"`
		Phone     *string       `json:"phone"`
		MenuItems []menuItemReq `json:"menu_items"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	items := make([]services.MenuItemInput, 0, len(body.MenuItems))
	for _, m := range body.MenuItems {
		available := true
		if m.IsAvailable != nil {
			available = *m.IsAvailable
		}
		items = append(items, services.MenuItemInput{
			Name:        m.Name,
			Description: m.Description,
			Price:       m.Price,
			CategoryID:  m.CategoryID,
			ImageURL:    m.ImageURL,
			IsAvailable: available,
		})
	}

	created, err := rc.Restaurants.CreateRestaurantWithMenu(c.Request.Context(), userID, services.CreateRestaurantInput{
		Name:      body.Name,
		Address:   body.Address,
		Phone:     body.Phone,
		MenuItems: items,
	})
	if err != nil {
		if !services.IsValidation(err) {
			utils.ErrorLogger.Printf("restaurant provisioning failed: %v", err)
		}
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Restaurant and menu items created successfully", gin.H{
		"restaurant_id":    created.RestaurantID,
		"name":             created.Name,
		"menu_items_count": created.MenuItemsCount,
	})
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
