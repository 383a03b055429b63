package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studioreel/website/internal/models"
)

// Sources are the lists the dashboard summarizes.
type Sources struct {
	Videos interface {
		List(ctx context.Context) ([]models.Video, error)
	}
	Blogs interface {
		List(ctx context.Context) ([]models.Blog, error)
	}
	Contacts interface {
		List(ctx context.Context) ([]models.Lead, error)
	}
	Demos interface {
		List(ctx context.Context) ([]models.DemoRequest, error)
	}
}

// Handler renders the admin dashboard.
type Handler struct {
	src    Sources
	logger *zap.Logger
}

// NewHandler creates a dashboard handler.
func NewHandler(src Sources, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{src: src, logger: logger}
}

// Show handles GET /admin/dashboard. A list that fails to load is shown empty.
func (h *Handler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	videos, err := h.src.Videos.List(ctx)
	if err != nil {
		h.logger.Error("dashboard: list videos failed", zap.Error(err))
		videos = []models.Video{}
	}
	blogs, err := h.src.Blogs.List(ctx)
	if err != nil {
		h.logger.Error("dashboard: list blogs failed", zap.Error(err))
		blogs = []models.Blog{}
	}
	contacts, err := h.src.Contacts.List(ctx)
	if err != nil {
		h.logger.Error("dashboard: list contacts failed", zap.Error(err))
		contacts = []models.Lead{}
	}
	demos, err := h.src.Demos.List(ctx)
	if err != nil {
		h.logger.Error("dashboard: list demo requests failed", zap.Error(err))
		demos = []models.DemoRequest{}
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Videos":       videos,
		"Blogs":        blogs,
		"Contacts":     contacts,
		"DemoRequests": demos,
		"ReelsCount":   CountReels(videos),
		"BlogsCount":   len(blogs),
	})
}

// CountReels counts the reels among videos.
func CountReels(videos []models.Video) int {
	n := 0
	for _, v := range videos {
		if v.Kind == models.VideoKindReel {
			n++
		}
	}
	return n
}
