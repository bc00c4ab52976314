package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/furnishfusion/storefront/internal/planner"
	"github.com/furnishfusion/storefront/pkg/logger"
)

// PlannerHandler serves the budget planner endpoint.
type PlannerHandler struct {
	planner *planner.Planner
}

func NewPlannerHandler(p *planner.Planner) *PlannerHandler {
	return &PlannerHandler{planner: p}
}

type plannerRequest struct {
	Message string `json:"message"`
}

// Run handles POST /api/budget-planner. Unparseable input comes back as
// a structured failure with 200; only a broken request body is a 400
// and only a catalog failure is a 500.
func (h *PlannerHandler) Run(c *gin.Context) {
	var req plannerRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Please describe your budget and room, e.g. \"I have 50000 for my bedroom\"",
		})
		return
	}

	result, err := h.planner.Run(c.Request.Context(), req.Message)
	if err != nil {
		logger.ErrorLogger.Printf("budget planner: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Something went wrong while searching the catalog. Please try again.",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}
