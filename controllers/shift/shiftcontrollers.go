package shiftcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
	"github.com/rushikeshbylinelearning/HRMS-sub005/models"
)

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) List(c *gin.Context) {
	var shifts []models.ShiftDefinition
	if err := h.DB.Order("id asc").Find(&shifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

func (h *Handler) Create(c *gin.Context) {
	var shift models.ShiftDefinition
	if err := c.ShouldBindJSON(&shift); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// reject definitions the engine would fail closed on
	if _, ok := engine.ResolvePolicy(shift.Spec()); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shift definition is incomplete: fixed shifts need HH:MM start and end times"})
		return
	}

	if err := h.DB.Create(&shift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save shift"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "shift created", "shift": shift})
}
