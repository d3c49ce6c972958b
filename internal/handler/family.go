package handler

import (
	"net/http"
	"strconv"

	"nestlog/internal/logger"
	"nestlog/internal/middleware"
	"nestlog/internal/model"
	"nestlog/internal/service"

	"github.com/gin-gonic/gin"
)

type FamilyHandler struct{ families *service.FamilyService }

func NewFamilyHandler(families *service.FamilyService) *FamilyHandler {
	return &FamilyHandler{families: families}
}

// Create handles POST /api/families — new household, first device, token.
func (h *FamilyHandler) Create(c *gin.Context) {
	var req model.CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	fam, dev, err := h.families.Create(c.Request.Context(), req.Name, req.Secret, req.DeviceName)
	if err != nil {
		logger.Error("family.create failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("family.created", "fid", fam.ID, "code", fam.Code)
	h.respondAuth(c, fam, dev)
}

// Join handles POST /api/families/join — code + secret, registers device.
func (h *FamilyHandler) Join(c *gin.Context) {
	var req model.JoinFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	fam, dev, err := h.families.Join(c.Request.Context(), req.Code, req.Secret, req.DeviceName)
	if err != nil {
		logger.Warn("family.join failed", "code", req.Code)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	logger.Info("family.joined", "fid", fam.ID, "did", dev.ID)
	h.respondAuth(c, fam, dev)
}

func (h *FamilyHandler) respondAuth(c *gin.Context, fam *model.Family, dev *model.Device) {
	token, err := middleware.IssueToken(fam.ID, dev.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}
	c.JSON(http.StatusOK, model.AuthResponse{Token: token, Family: *fam, Device: *dev})
}

// Devices handles GET /api/devices.
func (h *FamilyHandler) Devices(c *gin.Context) {
	devs, err := h.families.Devices(c.Request.Context(), c.GetInt("family_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, devs)
}

// GetBaby handles GET /api/baby.
func (h *FamilyHandler) GetBaby(c *gin.Context) {
	baby, err := h.families.Baby(c.Request.Context(), c.GetInt("family_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no baby profile"})
		return
	}
	c.JSON(http.StatusOK, baby)
}

// PutBaby handles PUT /api/baby.
func (h *FamilyHandler) PutBaby(c *gin.Context) {
	var req model.BabyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	baby, err := h.families.UpsertBaby(c.Request.Context(), c.GetInt("family_id"), req.Name, req.Birthday)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, baby)
}

// Presets handles GET /api/presets.
func (h *FamilyHandler) Presets(c *gin.Context) {
	presets, err := h.families.Presets(c.Request.Context(), c.GetInt("family_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if presets == nil {
		presets = []model.SupplementPreset{}
	}
	c.JSON(http.StatusOK, presets)
}

// AddPreset handles POST /api/presets.
func (h *FamilyHandler) AddPreset(c *gin.Context) {
	var req model.PresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, err := h.families.AddPreset(c.Request.Context(), c.GetInt("family_id"), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePreset handles DELETE /api/presets/:id.
func (h *FamilyHandler) DeletePreset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.families.DeletePreset(c.Request.Context(), c.GetInt("family_id"), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
