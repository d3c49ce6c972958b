package handler

import (
	"net/http"
	"time"

	"nestlog/internal/logger"
	"nestlog/internal/model"
	"nestlog/internal/service"
	"nestlog/internal/stats"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActivityHandler struct{ activities *service.ActivityService }

func NewActivityHandler(activities *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// Create handles POST /api/activities.
func (h *ActivityHandler) Create(c *gin.Context) {
	act, ok := h.bind(c)
	if !ok {
		return
	}
	if err := h.activities.Create(c.Request.Context(), act); err != nil {
		logger.Error("activity.create failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("activity.created", "fid", act.FamilyID, "type", act.Type, "id", act.ID)
	c.JSON(http.StatusOK, act)
}

// Update handles PUT /api/activities/:id.
func (h *ActivityHandler) Update(c *gin.Context) {
	act, ok := h.bind(c)
	if !ok {
		return
	}
	act.ID = c.Param("id")
	if err := h.activities.Update(c.Request.Context(), act.FamilyID, act); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, act)
}

// Delete handles DELETE /api/activities/:id.
func (h *ActivityHandler) Delete(c *gin.Context) {
	err := h.activities.Delete(c.Request.Context(), c.GetInt("family_id"), c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Get handles GET /api/activities/:id.
func (h *ActivityHandler) Get(c *gin.Context) {
	act, err := h.activities.GetByID(c.Request.Context(), c.GetInt("family_id"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}
	c.JSON(http.StatusOK, act)
}

// List handles GET /api/activities?start=2006-01-02&end=2006-01-02 — the raw
// rows for a window, both days inclusive.
func (h *ActivityHandler) List(c *gin.Context) {
	start, err1 := time.ParseInLocation(stats.DayKeyLayout, c.Query("start"), time.Local)
	end, err2 := time.ParseInLocation(stats.DayKeyLayout, c.Query("end"), time.Local)
	if err1 != nil || err2 != nil || end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}
	r := stats.DateRange{
		Start: stats.RangeFor(stats.PeriodDaily, start).Start,
		End:   stats.RangeFor(stats.PeriodDaily, end).End,
	}
	acts, err := h.activities.ListRange(c.Request.Context(), c.GetInt("family_id"), r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if acts == nil {
		acts = []model.Activity{}
	}
	c.JSON(http.StatusOK, acts)
}

// bind decodes the request body into an Activity owned by the caller's
// family. Metadata is decoded by the declared type, so a mismatched payload
// is rejected here rather than stored.
func (h *ActivityHandler) bind(c *gin.Context) (*model.Activity, bool) {
	var req model.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return nil, false
	}
	meta, err := model.DecodeMeta(req.Type, req.Metadata)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &model.Activity{
		FamilyID:   c.GetInt("family_id"),
		DeviceID:   c.GetString("device_id"),
		Type:       req.Type,
		RecordedAt: req.RecordedAt,
		Memo:       req.Memo,
		Metadata:   model.NewMeta(meta),
	}, true
}
