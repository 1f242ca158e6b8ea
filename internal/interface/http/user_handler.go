package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-cost-manager/internal/application"
	"github.com/oksasatya/go-cost-manager/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Now: time.Now}
}

type addUserRequest struct {
	ID            string `json:"id" binding:"required"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Birthday      string `json:"birthday" binding:"required"`
	MaritalStatus string `json:"marital_status" binding:"required"`
}

// AddUser handles POST /api/users/add.
func (h *UserHandler) AddUser(c *gin.Context) {
	var req addUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}
	u, err := h.Svc.AddUser(c.Request.Context(), application.AddUserInput{
		ID:            req.ID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Birthday:      req.Birthday,
		MaritalStatus: req.MaritalStatus,
	})
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, toUserResponse(u, h.Now()))
}

// GetUser handles GET /api/users/:id and answers with the user's cost total.
func (h *UserHandler) GetUser(c *gin.Context) {
	res, err := h.Svc.GetUserWithTotal(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}
