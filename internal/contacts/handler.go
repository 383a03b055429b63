package contacts

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studioreel/website/internal/models"
	"github.com/studioreel/website/internal/validation"
	"github.com/studioreel/website/pkg/response"
)

const (
	// FormAnchor is where a rejected or failed submission lands.
	FormAnchor    = "/#contact"
	dashboardPath = "/admin/dashboard"
)

// Store is the lead persistence the handler needs.
type Store interface {
	Create(ctx context.Context, l *models.Lead) error
	List(ctx context.Context) ([]models.Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handler handles the public contact form and admin lead management.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a contact handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// Submit handles POST /contact. Anything short of a stored lead sends the visitor back to the form.
func (h *Handler) Submit(c *gin.Context) {
	var in validation.LeadInput
	_ = c.ShouldBind(&in)

	res := h.submit(c.Request.Context(), in)
	if !res.OK {
		var violations validation.Violations
		if errors.As(res.Err, &violations) {
			h.logger.Debug("contact form rejected", zap.Error(res.Err))
		} else {
			h.logger.Error("save contact failed", zap.Error(res.Err))
		}
		response.Redirect(c, FormAnchor)
		return
	}
	lead := res.Data.(*models.Lead)
	h.logger.Info("lead received", zap.String("id", lead.ID.String()), zap.String("subject", lead.Subject))
	c.HTML(http.StatusOK, "thank_you.html", nil)
}

func (h *Handler) submit(ctx context.Context, in validation.LeadInput) response.Result {
	lead, err := validation.Lead(in)
	if err != nil {
		return response.Failure(err)
	}
	if err := h.store.Create(ctx, &lead); err != nil {
		return response.Failure(err)
	}
	return response.Success(&lead)
}

// AdminList handles GET /admin/contacts.
func (h *Handler) AdminList(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list contacts failed", zap.Error(err))
		response.ServerErrorPage(c, "Error loading contacts")
		return
	}
	c.HTML(http.StatusOK, "admin_contacts.html", gin.H{"Contacts": list})
}

// Delete handles GET /admin/contacts/delete/:id.
func (h *Handler) Delete(c *gin.Context) {
	defer response.Redirect(c, dashboardPath)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil && !errors.Is(err, models.ErrNotFound) {
		h.logger.Error("delete contact failed", zap.String("id", id.String()), zap.Error(err))
	}
}
