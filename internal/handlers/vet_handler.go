package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/vet-clinic/internal/httpresp"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type VetHandler struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewVetHandler(db *gorm.DB, log *logrus.Logger) *VetHandler {
	return &VetHandler{db: db, log: log}
}

func (h *VetHandler) List(c *gin.Context) {
	var vets []models.Vet
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&vets).Error; err != nil {
		renderError(c, h.log, err)
		return
	}
	httpresp.List(c, vets)
}
