package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaifmomin2004/EHR-Project/internal/middleware"
	"github.com/kaifmomin2004/EHR-Project/internal/service"
)

// UserHandler handles user management HTTP requests.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// List godoc
// @Summary List all users
// @Description Restricted to doctors and admins; password hashes are never serialized
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	caller, _ := middleware.CurrentUser(c)

	users, err := h.userService.List(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
