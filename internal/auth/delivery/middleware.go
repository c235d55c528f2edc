package delivery

import (
	authdomain "shop-backend/internal/auth/domain"
	"shop-backend/internal/auth/usecase"
	"shop-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler is a gin handler that runs with an authenticated session
type SessionHandler func(c *gin.Context, session *authdomain.Session)

// Authenticator guards routes behind bearer-token authentication
type Authenticator struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthenticator(authUsecase usecase.AuthUsecase) *Authenticator {
	return &Authenticator{authUsecase: authUsecase}
}

// Require resolves the Authorization header and calls next with the session.
// Any failure aborts the request with 401 before next runs.
func (a *Authenticator) Require(next SessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := a.authUsecase.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			response.Error(c, err)
			return
		}
		next(c, session)
	}
}
