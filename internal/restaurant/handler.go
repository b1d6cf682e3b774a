package restaurant

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

// --------------------------------------------------
// Create restaurant
// --------------------------------------------------
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		CuisineType string `json:"cuisine_type"`
		Location    string `json:"location"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ownerID := c.GetString("userID")

	restaurant, err := h.service.CreateRestaurant(c.Request.Context(), ownerID, &Restaurant{
		Name:        req.Name,
		Description: req.Description,
		CuisineType: req.CuisineType,
		Location:    req.Location,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// --------------------------------------------------
// List restaurants owned by user
// --------------------------------------------------
func (h *Handler) ListMyRestaurants(c *gin.Context) {
	ownerID := c.GetString("userID")

	restaurants, err := h.service.ListMyRestaurants(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// --------------------------------------------------
// Deactivate restaurant
// --------------------------------------------------
func (h *Handler) DeactivateRestaurant(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	ownerID := c.GetString("userID")

	if err := h.service.DeactivateRestaurant(c.Request.Context(), restaurantID, ownerID); err != nil {
		if errors.Is(err, ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate restaurant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "restaurant deactivated"})
}

// --------------------------------------------------
// Public browse + detail
// --------------------------------------------------
func (h *Handler) Browse(c *gin.Context) {
	filter := BrowseFilter{
		Search:   c.Query("search"),
		Cuisine:  c.Query("cuisine"),
		Location: c.Query("location"),
	}

	restaurants, err := h.service.Browse(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) Detail(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	restaurant, err := h.service.Detail(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// --------------------------------------------------
// POST /owner/restaurants/:id/image
// --------------------------------------------------
func (h *Handler) UploadImage(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	ownerID := c.GetString("userID")

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	url, err := h.service.UploadImage(c.Request.Context(), restaurantID, ownerID, file)
	if err != nil {
		if errors.Is(err, ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
