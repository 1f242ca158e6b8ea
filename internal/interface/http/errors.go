package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-cost-manager/internal/application"
	"github.com/oksasatya/go-cost-manager/pkg/response"
	"github.com/oksasatya/go-cost-manager/pkg/validation"
)

// renderError maps service errors to HTTP answers. Anything unexpected is
// logged and answered with an opaque 500.
func renderError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidInput), errors.Is(err, application.ErrDuplicateID):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
	default:
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"method":     c.Request.Method,
				"path":       c.FullPath(),
			}).Error("request failed")
		}
		response.InternalError(c)
	}
}

func renderBindError(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}
