package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-cost-manager/internal/application"
	"github.com/oksasatya/go-cost-manager/pkg/response"
)

type CostHandler struct {
	Costs   *application.CostService
	Reports *application.ReportService
	Logger  *logrus.Logger
}

func NewCostHandler(costs *application.CostService, reports *application.ReportService, logger *logrus.Logger) *CostHandler {
	return &CostHandler{Costs: costs, Reports: reports, Logger: logger}
}

// Sum is a pointer so that a missing value and 0 stay distinguishable.
type addCostRequest struct {
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	UserID      string   `json:"userid" binding:"required"`
	Sum         *float64 `json:"sum" binding:"required"`
	Date        string   `json:"date"`
}

// AddCost handles POST /api/add.
func (h *CostHandler) AddCost(c *gin.Context) {
	var req addCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}
	cost, err := h.Costs.AddCost(c.Request.Context(), application.AddCostInput{
		Description: req.Description,
		Category:    req.Category,
		UserID:      req.UserID,
		Sum:         req.Sum,
		Date:        req.Date,
	})
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, toCostResponse(cost))
}

// Report handles GET /api/report?id=&year=&month=.
func (h *CostHandler) Report(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("id"))
	if userID == "" {
		renderError(c, h.Logger, application.ErrMissingReportParams)
		return
	}
	year, month, err := application.ParsePeriod(c.Query("year"), c.Query("month"))
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	r, err := h.Reports.GenerateReport(c.Request.Context(), userID, year, month)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, r)
}

// Search handles GET /api/costs/search?id=&q=&size=.
func (h *CostHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	costs, err := h.Costs.SearchCosts(c.Request.Context(), c.Query("id"), c.Query("q"), size)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	out := make([]costResponse, 0, len(costs))
	for i := range costs {
		out = append(out, toCostResponse(&costs[i]))
	}
	response.JSON(c, http.StatusOK, out)
}
