package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nestlog/internal/model"
	"nestlog/internal/service"
	"nestlog/internal/stats"

	"github.com/gin-gonic/gin"
)

// StatsProvider is implemented by *service.StatsService.
type StatsProvider interface {
	Overview(ctx context.Context, familyID int, period stats.Period, anchor time.Time) (*service.StatsOverview, error)
	SleepDay(ctx context.Context, familyID int, day time.Time) ([]stats.SleepSession, error)
}

// ActivityLister is the data-access slice the export endpoint needs.
type ActivityLister interface {
	ListRange(ctx context.Context, familyID int, r stats.DateRange) ([]model.Activity, error)
}

type StatsHandler struct {
	svc        StatsProvider
	activities ActivityLister
	export     *service.ExportService
}

func NewStatsHandler(svc StatsProvider, activities ActivityLister, export *service.ExportService) *StatsHandler {
	return &StatsHandler{svc: svc, activities: activities, export: export}
}

// Overview handles GET /api/stats?period=weekly&anchor=2025-06-15.
func (h *StatsHandler) Overview(c *gin.Context) {
	period, ok := parsePeriod(c.Query("period"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
		return
	}
	anchor, ok := parseDay(c.Query("anchor"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anchor"})
		return
	}

	overview, err := h.svc.Overview(c.Request.Context(), c.GetInt("family_id"), period, anchor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// SleepSessions handles GET /api/stats/sleep-sessions?date=2025-01-15.
func (h *StatsHandler) SleepSessions(c *gin.Context) {
	day, ok := parseDay(c.Query("date"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	sessions, err := h.svc.SleepDay(c.Request.Context(), c.GetInt("family_id"), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// Export handles GET /api/stats/export?month=2025-06 — the month's three
// series as an xlsx download.
func (h *StatsHandler) Export(c *gin.Context) {
	anchor, err := time.ParseInLocation("2006-01", c.Query("month"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}
	r := stats.RangeFor(stats.PeriodMonthly, anchor)

	acts, err := h.activities.ListRange(c.Request.Context(), c.GetInt("family_id"), r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	f, err := h.export.Workbook(acts, r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	name := fmt.Sprintf("nestlog-%s.xlsx", anchor.Format("2006-01"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if _, err := f.WriteTo(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func parsePeriod(s string) (stats.Period, bool) {
	switch stats.Period(s) {
	case stats.PeriodDaily, stats.PeriodWeekly, stats.PeriodMonthly:
		return stats.Period(s), true
	case "":
		return stats.PeriodDaily, true
	default:
		return "", false
	}
}

func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Now(), true
	}
	t, err := time.ParseInLocation(stats.DayKeyLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
