// Package auth is the operator authentication surface: registration and
// login with bcrypt-hashed passwords and JWT issuance. Operators are not
// reference data, so this module does not sit on the generic engine.
package auth

import "github.com/gin-gonic/gin"

// AuthModule registers the authentication routes.
type AuthModule struct {
	handler *AuthHandler
}

// NewModule creates a new AuthModule with the given handler.
// Panics if h is nil.
func NewModule(h *AuthHandler) *AuthModule {
	if h == nil {
		panic("auth.NewModule: handler must not be nil")
	}
	return &AuthModule{handler: h}
}

// RegisterRoutes registers auth API routes.
func (m *AuthModule) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/auth")
	g.POST("/login", m.handler.Login)
	g.POST("/register", m.handler.Register)
}
