package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-cost-manager/internal/interface/http"
)

type AboutModule struct {
	Handler *handlers.AboutHandler
}

func NewAboutModule(h *handlers.AboutHandler) *AboutModule { return &AboutModule{Handler: h} }

func (m *AboutModule) Register(rg *gin.RouterGroup) {
	rg.GET("/about", m.Handler.About)
}
