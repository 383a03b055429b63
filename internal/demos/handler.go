package demos

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studioreel/website/internal/models"
	"github.com/studioreel/website/internal/validation"
	"github.com/studioreel/website/pkg/response"
)

// Store is the demo request persistence the handler needs.
type Store interface {
	Create(ctx context.Context, mobile string) (*models.DemoRequest, error)
}

// BookRequest is the body for POST /book-demo, sent either as a form or as JSON.
type BookRequest struct {
	Mobile string `form:"mobile" json:"mobile"`
}

// Handler handles "book a demo" submissions.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a demo request handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// Book handles POST /book-demo.
func (h *Handler) Book(c *gin.Context) {
	var req BookRequest
	_ = c.ShouldBind(&req)

	res := h.book(c.Request.Context(), req.Mobile)
	var violations validation.Violations
	switch {
	case res.OK:
		response.Done(c, "Thank you! We will contact you soon.")
	case errors.As(res.Err, &violations):
		response.Error(c, http.StatusBadRequest, "Invalid mobile number")
	case errors.Is(res.Err, models.ErrAlreadyRegistered):
		response.Message(c, "This number is already registered!")
	default:
		h.logger.Error("save demo request failed", zap.Error(res.Err))
		response.Error(c, http.StatusInternalServerError, "Server error")
	}
}

func (h *Handler) book(ctx context.Context, raw string) response.Result {
	mobile, err := validation.Mobile(raw)
	if err != nil {
		return response.Failure(err)
	}
	d, err := h.store.Create(ctx, mobile)
	if err != nil {
		return response.Failure(err)
	}
	h.logger.Info("demo requested", zap.String("id", d.ID.String()))
	return response.Success(d)
}
