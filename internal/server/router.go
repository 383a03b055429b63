// Package server wires handlers, the admin gate and middleware into the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studioreel/website/internal/auth"
	"github.com/studioreel/website/internal/blogs"
	"github.com/studioreel/website/internal/contacts"
	"github.com/studioreel/website/internal/dashboard"
	"github.com/studioreel/website/internal/demos"
	"github.com/studioreel/website/internal/middleware"
	"github.com/studioreel/website/internal/pages"
	"github.com/studioreel/website/internal/videos"
	"github.com/studioreel/website/pkg/response"
	"github.com/studioreel/website/web"
)

// Handlers are the route handlers the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	Videos    *videos.Handler
	Blogs     *blogs.Handler
	Contacts  *contacts.Handler
	Demos     *demos.Handler
	Dashboard *dashboard.Handler
}

// NewRouter builds the site router. Every /admin route except logout sits behind the admin gate.
func NewRouter(h Handlers, sessions *auth.Manager, maxMultipartMemory int64, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logger(logger))
	router.MaxMultipartMemory = maxMultipartMemory
	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", http.FS(web.Static()))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// Public
	pages.Register(router)
	router.GET("/ourwork", h.Videos.OurWork)
	router.GET("/blogs", h.Blogs.List)
	router.GET("/blog/:id", h.Blogs.Show)
	router.POST("/contact", h.Contacts.Submit)
	router.POST("/book-demo", h.Demos.Book)

	// Admin login
	router.GET(auth.LoginPath, h.Auth.LoginPage)
	router.POST(auth.LoginPath, h.Auth.Login)
	router.GET("/admin/logout", h.Auth.Logout)

	admin := router.Group("/admin")
	admin.Use(middleware.RequireAdmin(sessions))
	{
		admin.GET("/dashboard", h.Dashboard.Show)

		admin.GET("/videos/add/:type", h.Videos.AddPage)
		admin.POST("/videos/add/:type", h.Videos.Add)
		admin.GET("/videos/delete/:id", h.Videos.Delete)

		admin.GET("/blogs/add", h.Blogs.AddPage)
		admin.POST("/blogs/add", h.Blogs.Add)
		admin.GET("/blogs/edit/:id", h.Blogs.EditPage)
		admin.POST("/blogs/edit/:id", h.Blogs.Edit)
		admin.GET("/blogs/delete/:id", h.Blogs.Delete)

		admin.GET("/contacts", h.Contacts.AdminList)
		admin.GET("/contacts/delete/:id", h.Contacts.Delete)
	}

	router.NoRoute(pages.NotFound)
	return router
}
