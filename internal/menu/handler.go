package menu

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

//
// --------------------------------------------------
// POST /owner/menu-items
// --------------------------------------------------
//

func (h *Handler) AddItem(c *gin.Context) {
	ownerID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var item Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.AddItem(c.Request.Context(), ownerID.(string), &item); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrMissingFields) || errors.Is(err, ErrInvalidPrice) {
			status = http.StatusBadRequest
		} else {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "menu item added successfully",
		"item":    item,
	})
}

//
// --------------------------------------------------
// PATCH /owner/menu-items/:id
// --------------------------------------------------
//

func (h *Handler) UpdateItem(c *gin.Context) {
	ownerID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	var patch ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), ownerID.(string), itemID, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "menu item updated",
		"item":    item,
	})
}

//
// --------------------------------------------------
// DELETE /owner/menu-items/:id
// --------------------------------------------------
//

func (h *Handler) DeleteItem(c *gin.Context) {
	ownerID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), ownerID.(string), itemID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}

//
// --------------------------------------------------
// POST /owner/menu-items/:id/image
// --------------------------------------------------
//

func (h *Handler) UploadItemImage(c *gin.Context) {
	ownerID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}

	url, err := h.service.UploadItemImage(c.Request.Context(), ownerID.(string), itemID, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

//
// --------------------------------------------------
// GET /owner/restaurants/:id/menu
// --------------------------------------------------
//

func (h *Handler) OwnerMenu(c *gin.Context) {
	ownerID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	items, err := h.service.OwnerMenu(c.Request.Context(), ownerID.(string), restaurantID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

//
// --------------------------------------------------
// GET /restaurants/:id/menu  (public browsing with filters)
// --------------------------------------------------
//

func (h *Handler) BrowseMenu(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	filter := BrowseFilter{
		Category:  c.Query("category"),
		Cuisine:   c.Query("cuisine"),
		PriceBand: c.Query("price"),
		Dietary:   c.Query("dietary"),
	}

	items, err := h.service.BrowseRestaurantMenu(c.Request.Context(), restaurantID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
