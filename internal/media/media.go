// Package media hands uploaded files to the object store and removes them again.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studioreel/website/pkg/storage"
)

// Kind is the remote resource type. A reference can only be deleted with the kind it was stored under.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

const (
	FolderVideos     = "portfolio-videos"
	FolderBlogImages = "blog-images"

	MaxVideoSize  = 100 * 1024 * 1024
	MaxImageSize  = 15 * 1024 * 1024
	MaxImageWidth = 1200
)

var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrEmptyFile       = errors.New("empty file")
	ErrUnknownKind     = errors.New("unknown media kind")
)

var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
}

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// Params routes an upload: where it lands and how it is treated.
type Params struct {
	Folder   string
	Kind     Kind
	MaxWidth int // images only; 0 disables resizing
}

// VideoParams routes portfolio videos.
func VideoParams() Params { return Params{Folder: FolderVideos, Kind: KindVideo} }

// ImageParams routes blog cover images.
func ImageParams() Params {
	return Params{Folder: FolderBlogImages, Kind: KindImage, MaxWidth: MaxImageWidth}
}

// Object is a stored upload. Ref is what Delete needs.
type Object struct {
	URL string
	Ref string
}

// ObjectStore is the remote bucket API.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key, contentType string, body io.Reader, contentLength int64, opts storage.PutOptions) (string, error)
	DeleteObject(ctx context.Context, bucket, key string) error
}

// Buckets maps kinds to bucket names.
type Buckets struct {
	Videos string
	Images string
}

// Adapter uploads form files to the object store.
type Adapter struct {
	store   ObjectStore
	buckets Buckets
	logger  *zap.Logger
	now     func() time.Time
}

// NewAdapter creates a media adapter.
func NewAdapter(store ObjectStore, buckets Buckets, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{store: store, buckets: buckets, logger: logger, now: time.Now}
}

func (a *Adapter) bucket(kind Kind) (string, error) {
	switch kind {
	case KindVideo:
		return a.buckets.Videos, nil
	case KindImage:
		return a.buckets.Images, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Upload stores fh according to p and returns its URL and reference.
func (a *Adapter) Upload(ctx context.Context, fh *multipart.FileHeader, p Params) (Object, error) {
	if fh == nil || fh.Size == 0 {
		return Object{}, ErrEmptyFile
	}
	bucket, err := a.bucket(p.Kind)
	if err != nil {
		return Object{}, err
	}
	key := ObjectKey(p.Folder, fh.Filename, a.now())

	var url string
	switch p.Kind {
	case KindVideo:
		url, err = a.uploadVideo(ctx, bucket, key, fh)
	case KindImage:
		url, err = a.uploadImage(ctx, bucket, key, fh, p.MaxWidth)
	}
	if err != nil {
		return Object{}, err
	}
	a.logger.Info("media uploaded", zap.String("kind", string(p.Kind)), zap.String("key", key), zap.Int64("size", fh.Size))
	return Object{URL: url, Ref: key}, nil
}

func (a *Adapter) uploadVideo(ctx context.Context, bucket, key string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxVideoSize {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, fh.Size, MaxVideoSize)
	}
	contentType, ok := videoTypes[strings.ToLower(path.Ext(fh.Filename))]
	if !ok {
		if ct := fh.Header.Get("Content-Type"); strings.HasPrefix(ct, "video/") {
			contentType = ct
		} else {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedType, fh.Filename)
		}
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	url, err := a.store.Upload(ctx, bucket, key, contentType, f, fh.Size, storage.PutOptions{PublicRead: true, Inline: true})
	if err != nil {
		return "", fmt.Errorf("store video: %w", err)
	}
	return url, nil
}

// Delete removes the remote object stored under ref.
func (a *Adapter) Delete(ctx context.Context, ref string, kind Kind) error {
	bucket, err := a.bucket(kind)
	if err != nil {
		return err
	}
	if ref == "" {
		return errors.New("empty media reference")
	}
	return a.store.DeleteObject(ctx, bucket, ref)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// ObjectKey builds folder/yyyymmdd-uuid-name with the name reduced to safe characters.
func ObjectKey(folder, filename string, now time.Time) string {
	name := unsafeChars.ReplaceAllString(path.Base(strings.ReplaceAll(filename, "\\", "/")), "_")
	return fmt.Sprintf("%s/%s-%s-%s", folder, now.Format("20060102"), uuid.NewString(), name)
}

// UserMessage turns an upload error into text for the admin form.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyFile):
		return "The selected file is empty."
	case errors.Is(err, ErrTooLarge):
		return "The file is too large. Videos must be under 100 MB and images under 15 MB."
	case errors.Is(err, ErrUnsupportedType):
		return "Unsupported file type."
	default:
		return "Upload failed, please try again."
	}
}
