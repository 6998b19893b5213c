package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satyam-pandey/scan-to-order/store"
	"github.com/satyam-pandey/scan-to-order/utils"
)

type MenuCategoryController struct {
	Store *store.Store
}

func NewMenuCategoryController(st *store.Store) *MenuCategoryController {
	return &MenuCategoryController{Store: st}
}

// GetAllCategories -> categories in display order.
func (mcc *MenuCategoryController) GetAllCategories(c *gin.Context) {
	var categories []struct {
		ID        uint   `json:"id"`
		Name      string `json:"name"`
		SortOrder int    `json:"sort_order"`
	}
	err := mcc.Store.FetchAll(c.Request.Context(), &categories,
		"SELECT id, name, sort_order FROM "+mcc.Store.Prefix()+"menu_categories ORDER BY sort_order, name")
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All menu categories", categories)
}
