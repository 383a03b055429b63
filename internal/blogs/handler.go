package blogs

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studioreel/website/internal/media"
	"github.com/studioreel/website/internal/models"
	"github.com/studioreel/website/internal/validation"
	"github.com/studioreel/website/pkg/response"
)

const (
	dashboardPath = "/admin/dashboard"
	imageField    = "image"
)

// Store is the blog persistence the handler needs.
type Store interface {
	Create(ctx context.Context, b *models.Blog) error
	List(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	Update(ctx context.Context, id uuid.UUID, u models.BlogUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Uploader stores cover images.
type Uploader interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, p media.Params) (media.Object, error)
}

// Handler handles the public blog and admin blog management.
type Handler struct {
	store    Store
	uploader Uploader
	logger   *zap.Logger
}

// NewHandler creates a blog handler.
func NewHandler(store Store, uploader Uploader, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, uploader: uploader, logger: logger}
}

// List handles GET /blogs. A store failure shows an empty list.
func (h *Handler) List(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list blogs failed", zap.Error(err))
		list = []models.Blog{}
	}
	c.HTML(http.StatusOK, "blogs.html", gin.H{"Blogs": list})
}

// Show handles GET /blog/:id.
func (h *Handler) Show(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFoundPage(c, "Blog not found")
		return
	}
	b, err := h.store.GetByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, models.ErrNotFound):
		response.NotFoundPage(c, "Blog not found")
		return
	case err != nil:
		h.logger.Error("load blog failed", zap.String("id", id.String()), zap.Error(err))
		response.ServerErrorPage(c, "Server error")
		return
	}
	c.HTML(http.StatusOK, "blog_details.html", gin.H{"Blog": b})
}

// AddPage handles GET /admin/blogs/add.
func (h *Handler) AddPage(c *gin.Context) {
	h.renderAdd(c, validation.BlogInput{}, "")
}

// Add handles POST /admin/blogs/add.
func (h *Handler) Add(c *gin.Context) {
	var raw validation.BlogInput
	_ = c.ShouldBind(&raw)

	in, err := validation.Blog(raw)
	if err != nil {
		h.renderAdd(c, raw, err.Error())
		return
	}

	b := &models.Blog{Title: in.Title, Paragraph1: in.Paragraph1, Paragraph2: in.Paragraph2, Quote: in.Quote}
	url, msg, ok := h.uploadImage(c)
	if !ok {
		h.renderAdd(c, raw, msg)
		return
	}
	if url != "" {
		b.ImageURL = &url
	}

	if err := h.store.Create(c.Request.Context(), b); err != nil {
		h.logger.Error("create blog failed", zap.Error(err))
		h.renderAdd(c, raw, "Could not save the post, please try again.")
		return
	}
	h.logger.Info("blog added", zap.String("id", b.ID.String()))
	response.Redirect(c, dashboardPath)
}

// EditPage handles GET /admin/blogs/edit/:id. Unknown posts go back to the dashboard.
func (h *Handler) EditPage(c *gin.Context) {
	b, ok := h.load(c)
	if !ok {
		response.Redirect(c, dashboardPath)
		return
	}
	h.renderEdit(c, b, "")
}

// Edit handles POST /admin/blogs/edit/:id. Without a new file the stored image is kept; a replaced
// image is not removed from the media store.
func (h *Handler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Redirect(c, dashboardPath)
		return
	}

	var raw validation.BlogInput
	_ = c.ShouldBind(&raw)

	in, err := validation.Blog(raw)
	if err != nil {
		h.rerenderEdit(c, raw, err.Error())
		return
	}

	u := models.BlogUpdate{Title: in.Title, Paragraph1: in.Paragraph1, Paragraph2: in.Paragraph2, Quote: in.Quote}
	url, msg, ok := h.uploadImage(c)
	if !ok {
		h.rerenderEdit(c, raw, msg)
		return
	}
	if url != "" {
		u.ImageURL = &url
	}

	switch err := h.store.Update(c.Request.Context(), id, u); {
	case errors.Is(err, models.ErrNotFound):
		// removed while the form was open
	case err != nil:
		h.logger.Error("update blog failed", zap.String("id", id.String()), zap.Error(err))
		h.rerenderEdit(c, raw, "Could not save the post, please try again.")
		return
	default:
		h.logger.Info("blog updated", zap.String("id", id.String()), zap.Bool("image_replaced", u.ImageURL != nil))
	}
	response.Redirect(c, dashboardPath)
}

// Delete handles GET /admin/blogs/delete/:id. The cover image stays in the media store.
func (h *Handler) Delete(c *gin.Context) {
	defer response.Redirect(c, dashboardPath)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil && !errors.Is(err, models.ErrNotFound) {
		h.logger.Error("delete blog failed", zap.String("id", id.String()), zap.Error(err))
	}
}

// uploadImage stores the optional cover image. It returns "" when no file was sent and ok=false
// with a form message when the upload failed.
func (h *Handler) uploadImage(c *gin.Context) (url, msg string, ok bool) {
	fh, err := c.FormFile(imageField)
	if err != nil {
		return "", "", true
	}
	obj, err := h.uploader.Upload(c.Request.Context(), fh, media.ImageParams())
	if err != nil {
		h.logger.Warn("blog image upload failed", zap.String("filename", fh.Filename), zap.Error(err))
		return "", media.UserMessage(err), false
	}
	return obj.URL, "", true
}

func (h *Handler) load(c *gin.Context) (*models.Blog, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, false
	}
	b, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			h.logger.Error("load blog failed", zap.String("id", id.String()), zap.Error(err))
		}
		return nil, false
	}
	return b, true
}

// rerenderEdit shows the edit form again with what the admin typed over the stored post.
func (h *Handler) rerenderEdit(c *gin.Context, raw validation.BlogInput, msg string) {
	b, ok := h.load(c)
	if !ok {
		response.Redirect(c, dashboardPath)
		return
	}
	b.Title, b.Paragraph1, b.Paragraph2, b.Quote = raw.Title, raw.Paragraph1, raw.Paragraph2, raw.Quote
	h.renderEdit(c, b, msg)
}

func (h *Handler) renderAdd(c *gin.Context, form validation.BlogInput, msg string) {
	c.HTML(http.StatusOK, "admin_blog_add.html", gin.H{"Form": form, "Error": msg})
}

func (h *Handler) renderEdit(c *gin.Context, b *models.Blog, msg string) {
	c.HTML(http.StatusOK, "admin_blog_edit.html", gin.H{"Blog": b, "Error": msg})
}
