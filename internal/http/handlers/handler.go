package handlers

import (
	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	Users      domain.UserRepository
	Tasks      domain.TaskRepository
	Auth       *service.AuthService
	Secret     []byte
	Production bool
}

func NewHandler(db *pgxpool.Pool, cfg *config.Config) *Handler {
	users := repository.NewUserRepository(db)
	return &Handler{
		Users:      users,
		Tasks:      repository.NewTaskRepository(db),
		Auth:       service.NewAuthService(users),
		Secret:     []byte(cfg.JWTSecret),
		Production: cfg.Production(),
	}
}

// currentUserID resolves the authenticated caller. The gate's context value
// is authoritative; the forwarded header and a direct cookie re-verification
// are kept as fallbacks, in that order.
func (h *Handler) currentUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get(middleware.CtxUserID); ok {
		if id, ok := v.(string); ok && id != "" {
			return id, true
		}
	}

	if id := c.GetHeader("x-user-id"); id != "" {
		return id, true
	}

	if tok, err := c.Cookie(middleware.CookieName); err == nil && tok != "" {
		if claims, err := service.VerifyToken(tok, h.Secret); err == nil {
			return claims.UserID, true
		}
	}

	return "", false
}

// currentClaims re-verifies the cookie; used by page handlers that sit
// outside the gate's identity-forwarding path.
func (h *Handler) currentClaims(c *gin.Context) *service.SessionClaims {
	tok, err := c.Cookie(middleware.CookieName)
	if err != nil || tok == "" {
		return nil
	}
	claims, err := service.VerifyToken(tok, h.Secret)
	if err != nil {
		return nil
	}
	return claims
}
