package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-cost-manager/pkg/response"
)

type TeamMember struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AboutHandler struct {
	Members []TeamMember
}

// NewAboutHandler splits each full name on its first space: the first token is
// the first name, the remainder the last name.
func NewAboutHandler(fullNames []string) *AboutHandler {
	members := make([]TeamMember, 0, len(fullNames))
	for _, n := range fullNames {
		first, last, _ := strings.Cut(strings.TrimSpace(n), " ")
		members = append(members, TeamMember{FirstName: first, LastName: strings.TrimSpace(last)})
	}
	return &AboutHandler{Members: members}
}

func (h *AboutHandler) About(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.Members)
}
