package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-cost-manager/internal/container"
	handlers "github.com/oksasatya/go-cost-manager/internal/interface/http"
	"github.com/oksasatya/go-cost-manager/internal/interface/middleware"
	"github.com/oksasatya/go-cost-manager/internal/router/modules"
)

func writeLimiter(c *container.Container) gin.HandlerFunc {
	var allow middleware.AllowFunc
	if c.Config.RateLimitBypassPrivate {
		allow = middleware.AllowPrivateIP()
	}
	return middleware.RateLimit(c.Redis, c.Config.RateLimitWritesPerMin, time.Minute, middleware.KeyByIPAndPath(), allow)
}

// InitModules builds the handlers from the container and registers their modules.
// It should be called once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	limiter := writeLimiter(c)

	userHandler := handlers.NewUserHandler(c.UserService, c.Logger)
	costHandler := handlers.NewCostHandler(c.CostService, c.ReportService, c.Logger)
	aboutHandler := handlers.NewAboutHandler(c.Config.TeamMemberNames())

	r.Add(modules.NewUserModule(userHandler, limiter))
	r.Add(modules.NewCostModule(costHandler, limiter))
	r.Add(modules.NewAboutModule(aboutHandler))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
}
