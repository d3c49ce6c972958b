package handler

import (
	"net/http"

	"nestlog/internal/demo"

	"github.com/gin-gonic/gin"
)

type DemoHandler struct{}

func NewDemoHandler() *DemoHandler { return &DemoHandler{} }

// Get handles GET /api/demo — the full demo payload. No auth: demo mode is
// how the app is explored before a family exists.
func (h *DemoHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, demo.Generate())
}
