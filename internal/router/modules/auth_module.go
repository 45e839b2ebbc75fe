package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/inotebook/internal/interface/http"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Gate    gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, gate gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Gate: gate}
}

// Register mounts:
// Public: POST /auth/createuser, POST /auth/login
// Protected: POST /auth/getuser
func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/createuser", m.Handler.CreateUser)
	auth.POST("/login", m.Handler.Login)
	auth.POST("/getuser", m.Gate, m.Handler.GetUser)
}
