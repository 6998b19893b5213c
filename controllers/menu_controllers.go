package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/satyam-pandey/scan-to-order/models"
	"github.com/satyam-pandey/scan-to-order/store"
	"github.com/satyam-pandey/scan-to-order/utils"
)

type MenuController struct {
	Store *store.Store
}

func NewMenuController(st *store.Store) *MenuController {
	return &MenuController{Store: st}
}

// GetMenuItems -> the menu of one restaurant with each item's category name.
// The category is resolved by foreign key lookup, not a back-reference.
func (mc *MenuController) GetMenuItems(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var items []models.MenuItem
	if err := mc.Store.DB().
		Where("restaurant_id = ?", restaurantID).
		Order("id").
		Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	categoryNames, err := mc.categoryNames(items)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	resp := make([]gin.H, 0, len(items))
	for _, item := range items {
		var categoryName *string
		if item.CategoryID != nil {
			if name, ok := categoryNames[*item.CategoryID]; ok {
				categoryName = &name
			}
		}
		resp = append(resp, gin.H{
			"id":           item.ID,
			"name":         item.Name,
			"price":        strconv.FormatFloat(item.Price, 'f', 2, 64),
			"description":  item.Description,
			"image_url":    item.ImageURL,
			"is_available": item.IsAvailable,
			"category":     gin.H{"name": categoryName},
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Menu items", resp)
}

func (mc *MenuController) categoryNames(items []models.MenuItem) (map[uint]string, error) {
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool)
	for _, item := range items {
		if item.CategoryID != nil && !seen[*item.CategoryID] {
			seen[*item.CategoryID] = true
			ids = append(ids, *item.CategoryID)
		}
	}
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var categories []models.MenuCategory
	if err := mc.Store.DB().Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}
	return names, nil
}
