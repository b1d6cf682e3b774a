package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func customerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return v.(string), true
}

//
// --------------------------------------------------
// GET /cart
// --------------------------------------------------
//

func (h *Handler) View(c *gin.Context) {
	userID, ok := customerID(c)
	if !ok {
		return
	}

	view, err := h.service.View(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, view)
}

//
// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
//

func (h *Handler) Add(c *gin.Context) {
	userID, ok := customerID(c)
	if !ok {
		return
	}

	var req struct {
		MenuItemID int `json:"menu_item_id"`
		Quantity   int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	count, err := h.service.Add(c.Request.Context(), userID, req.MenuItemID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "item added to cart successfully",
		"cart_count": count,
	})
}

//
// --------------------------------------------------
// PATCH /cart/items/:id
// --------------------------------------------------
//

func (h *Handler) UpdateQuantity(c *gin.Context) {
	userID, ok := customerID(c)
	if !ok {
		return
	}

	lineID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item id"})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.UpdateQuantity(c.Request.Context(), userID, lineID, req.Quantity)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrLineNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "cart updated",
		"cart":            result.View,
		"line_unit_price": result.LineUnitPrice,
		"line_total":      result.LineTotal,
	})
}

//
// --------------------------------------------------
// DELETE /cart/items/:id
// --------------------------------------------------
//

func (h *Handler) Remove(c *gin.Context) {
	userID, ok := customerID(c)
	if !ok {
		return
	}

	lineID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item id"})
		return
	}

	view, err := h.service.Remove(c.Request.Context(), userID, lineID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "item removed from cart",
		"cart":    view,
	})
}

//
// --------------------------------------------------
// POST /cart/coupon
// --------------------------------------------------
//

func (h *Handler) ApplyCoupon(c *gin.Context) {
	userID, ok := customerID(c)
	if !ok {
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.service.ApplyCoupon(c.Request.Context(), userID, req.Code)
	if err != nil {
		if errors.Is(err, ErrUnknownCoupon) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply coupon"})
		return
	}

	message := "coupon applied"
	if view.AppliedCoupon == "" {
		message = "coupon cleared"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"cart":    view,
	})
}
