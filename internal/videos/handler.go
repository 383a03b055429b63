package videos

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

const dashboardPath = "/admin/dashboard"

// Store is the video persistence the handler needs.
type Store interface {
	Create(ctx context.Context, v *models.Video) error
	List(ctx context.Context) ([]models.Video, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Media uploads and removes remote video files.
type Media interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, p media.Params) (media.Object, error)
	Delete(ctx context.Context, ref string, kind media.Kind) error
}

// Handler handles the portfolio page and admin video management.
type Handler struct {
	store  Store
	media  Media
	logger *zap.Logger
}

// NewHandler creates a video handler.
func NewHandler(store Store, m Media, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, media: m, logger: logger}
}

// OurWork handles GET /ourwork. A store failure shows an empty portfolio.
func (h *Handler) OurWork(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list videos failed", zap.Error(err))
		list = []models.Video{}
	}
	c.HTML(http.StatusOK, "ourwork.html", gin.H{"Videos": list})
}

// AddPage handles GET /admin/videos/add/:type.
func (h *Handler) AddPage(c *gin.Context) {
	kind := models.VideoKind(c.Param("type"))
	if !kind.Valid() {
		response.Redirect(c, dashboardPath)
		return
	}
	h.renderAdd(c, kind, "")
}

// Add handles POST /admin/videos/add/:type. The file is uploaded before the record is written.
func (h *Handler) Add(c *gin.Context) {
	kind := models.VideoKind(c.Param("type"))
	if !kind.Valid() {
		response.Redirect(c, dashboardPath)
		return
	}

	fh, fileErr := c.FormFile("video")
	form, err := validation.Video(validation.VideoInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		HasFile:     fileErr == nil,
	})
	if err != nil {
		h.renderAdd(c, kind, err.Error())
		return
	}

	ctx := c.Request.Context()
	obj, err := h.media.Upload(ctx, fh, media.VideoParams())
	if err != nil {
		h.logger.Warn("video upload failed", zap.String("filename", fh.Filename), zap.Error(err))
		h.renderAdd(c, kind, media.UserMessage(err))
		return
	}

	v := &models.Video{
		Title:       form.Title,
		Description: form.Description,
		MediaURL:    obj.URL,
		MediaRef:    obj.Ref,
		Kind:        kind,
	}
	if err := h.store.Create(ctx, v); err != nil {
		h.logger.Error("create video failed", zap.String("media_ref", obj.Ref), zap.Error(err))
		if derr := h.media.Delete(ctx, obj.Ref, media.KindVideo); derr != nil {
			h.logger.Warn("remove unsaved upload failed", zap.String("media_ref", obj.Ref), zap.Error(derr))
		}
		h.renderAdd(c, kind, "Could not save the video, please try again.")
		return
	}
	h.logger.Info("video added", zap.String("id", v.ID.String()), zap.String("kind", string(kind)))
	response.Redirect(c, dashboardPath)
}

// Delete handles GET /admin/videos/delete/:id. The row goes first; the remote file is removed
// best effort afterwards.
func (h *Handler) Delete(c *gin.Context) {
	defer response.Redirect(c, dashboardPath)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return
	}
	ctx := c.Request.Context()
	v, err := h.store.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			h.logger.Error("load video for delete failed", zap.String("id", id.String()), zap.Error(err))
		}
		return
	}
	if err := h.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			h.logger.Error("delete video failed", zap.String("id", id.String()), zap.Error(err))
		}
		return
	}
	if err := h.media.Delete(ctx, v.MediaRef, media.KindVideo); err != nil {
		h.logger.Warn("remote video delete failed", zap.String("id", id.String()), zap.String("media_ref", v.MediaRef), zap.Error(err))
	}
}

func (h *Handler) renderAdd(c *gin.Context, kind models.VideoKind, msg string) {
	c.HTML(http.StatusOK, "admin_video_add.html", gin.H{"Type": string(kind), "Error": msg})
}
