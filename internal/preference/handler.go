package preference

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
// POST /preferences
// --------------------------------------------------
//

func (h *Handler) Add(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Type  string `json:"preference_type"`
		Value string `json:"preference_value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pref, created, err := h.service.Add(c.Request.Context(), userID.(string), req.Type, req.Value)
	if err != nil {
		if errors.Is(err, ErrInvalidPreference) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add preference"})
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "preference already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "preference added successfully",
		"preference": pref,
	})
}

//
// --------------------------------------------------
// DELETE /preferences/:id
// --------------------------------------------------
//

func (h *Handler) Remove(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	prefID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preference id"})
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID.(string), prefID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "preference removed successfully"})
}

//
// --------------------------------------------------
// GET /preferences
// --------------------------------------------------
//

func (h *Handler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	prefs, err := h.service.List(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}
