package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/inotebook/internal/application"
	"github.com/oksasatya/inotebook/internal/interface/middleware"
	"github.com/oksasatya/inotebook/pkg/response"
)

type AuthHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type tokenResponse struct {
	AuthToken string `json:"authToken"`
}

// CreateUser POST /api/auth/createuser
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req application.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	token, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, tokenResponse{AuthToken: token}, "user created", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req application.LoginInput
	if !bindJSON(c, &req) {
		return
	}
	token, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, tokenResponse{AuthToken: token}, "login successful", nil)
}

// GetUser POST /api/auth/getuser (auth required)
func (h *AuthHandler) GetUser(c *gin.Context) {
	uid, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		writeError(c, application.ErrUnauthenticated, "")
		return
	}
	view, err := h.Svc.GetCurrentIdentity(c.Request.Context(), uid)
	if err != nil {
		writeError(c, err, "User not found")
		return
	}
	response.Success(c, http.StatusOK, view, "user fetched", nil)
}
