// Package pages serves the site's static marketing pages.
package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studioreel/website/pkg/response"
)

// Page maps a path to the template rendered for it.
type Page struct {
	Path     string
	Template string
}

// Static lists the pages that render without data.
var Static = []Page{
	{"/", "home.html"},
	{"/about", "about.html"},
	{"/services", "services.html"},
	{"/service1", "service1.html"},
	{"/service2", "service2.html"},
	{"/service3", "service3.html"},
	{"/service4", "service4.html"},
	{"/service5", "service5.html"},
	{"/landingpage", "landingpage.html"},
	{"/contact", "contact.html"},
}

// Register mounts every static page on r.
func Register(r gin.IRoutes) {
	for _, p := range Static {
		r.GET(p.Path, Render(p.Template))
	}
}

// Render returns a handler that renders tmpl with no data.
func Render(tmpl string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, tmpl, nil)
	}
}

// NotFound renders the 404 page for unknown routes.
func NotFound(c *gin.Context) {
	response.NotFoundPage(c, "Page not found")
}
