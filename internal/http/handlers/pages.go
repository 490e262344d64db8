package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageTemplates parses the embedded page templates for gin's HTML renderer.
func PageTemplates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

func (h *Handler) PageHome(c *gin.Context) {
	claims := h.currentClaims(c)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Authenticated": claims != nil,
	})
}

func (h *Handler) PageLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *Handler) PageRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// PageDashboard renders the authenticated landing view. The gate guarantees
// a valid session before this runs.
func (h *Handler) PageDashboard(c *gin.Context) {
	claims := h.currentClaims(c)
	if claims == nil {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Name":  claims.Name,
		"Email": claims.Email,
	})
}
