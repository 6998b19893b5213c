package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/satyam-pandey/scan-to-order/store"
	"github.com/satyam-pandey/scan-to-order/utils"
)

type QRController struct {
	Store *store.Store
	// BaseURL is the customer-facing frontend; the QR encodes
	// BaseURL/order/<restaurant_id>.
	BaseURL string
}

func NewQRController(st *store.Store, baseURL string) *QRController {
	return &QRController{Store: st, BaseURL: baseURL}
}

// GenerateQR -> PNG of the ordering URL for one restaurant's tables.
func (qc *QRController) GenerateQR(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var row struct {
		ID uint
	}
	found, err := qc.Store.FetchOne(c.Request.Context(), &row,
		"SELECT id FROM "+qc.Store.Prefix()+"restaurants WHERE id = ?", restaurantID)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	target := fmt.Sprintf("%s/order/%d", qc.BaseURL, restaurantID)
	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
