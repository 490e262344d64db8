package handlers

import (
	"net/http"

	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"
	"taskboard/internal/service"
	"taskboard/internal/validation"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func userPayload(u *domain.User) gin.H {
	// never include the password hash
	return gin.H{"id": u.ID, "name": u.Name, "email": u.Email}
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validation.ValidateLogin(req.Email, req.Password); len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	user, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failFromError(c, err)
		return
	}

	token, err := service.IssueToken(user.ID, user.Email, user.Name, h.Secret)
	if err != nil {
		failFromError(c, err)
		return
	}
	h.setAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    userPayload(user),
	})
}

// Logout handles DELETE /api/auth/login: clears the session cookie. The
// token itself stays valid until expiry, the server keeps no revocation list.
func (h *Handler) Logout(c *gin.Context) {
	h.clearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validation.ValidateRegister(req.Name, req.Email, req.Password); len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	user, err := h.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		failFromError(c, err)
		return
	}

	token, err := service.IssueToken(user.ID, user.Email, user.Name, h.Secret)
	if err != nil {
		failFromError(c, err)
		return
	}
	h.setAuthCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    userPayload(user),
	})
}

// MethodNotAllowed backs the auth endpoints' unsupported verbs.
func (h *Handler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
}

func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, token, int(service.TokenTTL.Seconds()), "/", "", h.Production, true)
}

func (h *Handler) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.Production, true)
}
