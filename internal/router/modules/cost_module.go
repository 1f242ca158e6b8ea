package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-cost-manager/internal/interface/http"
)

// CostModule registers cost creation, the monthly report and cost search.
type CostModule struct {
	Handler *handlers.CostHandler
	Limiter gin.HandlerFunc
}

func NewCostModule(h *handlers.CostHandler, limiter gin.HandlerFunc) *CostModule {
	return &CostModule{Handler: h, Limiter: limiter}
}

func (m *CostModule) Register(rg *gin.RouterGroup) {
	rg.POST("/add", m.Limiter, m.Handler.AddCost)
	rg.GET("/report", m.Handler.Report)
	rg.GET("/costs/search", m.Handler.Search)
}
