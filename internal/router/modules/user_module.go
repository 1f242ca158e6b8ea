package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-cost-manager/internal/interface/http"
)

// UserModule registers:
// POST /api/users/add (rate limited)
// GET  /api/users/:id
type UserModule struct {
	Handler *handlers.UserHandler
	Limiter gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, limiter gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Limiter: limiter}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.POST("/add", m.Limiter, m.Handler.AddUser)
	users.GET("/:id", m.Handler.GetUser)
}
