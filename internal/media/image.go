package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/studioreel/website/pkg/storage"
)

// uploadImage downsizes wide images to maxWidth before storing them. Narrow images are stored as sent.
func (a *Adapter) uploadImage(ctx context.Context, bucket, key string, fh *multipart.FileHeader, maxWidth int) (string, error) {
	ext := strings.ToLower(path.Ext(fh.Filename))
	contentType, ok := imageTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, fh.Filename)
	}
	if fh.Size > MaxImageSize {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, fh.Size, MaxImageSize)
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	body, err := limitWidth(raw, ext, maxWidth)
	if err != nil {
		return "", err
	}
	url, err := a.store.Upload(ctx, bucket, key, contentType, bytes.NewReader(body), int64(len(body)), storage.PutOptions{
		PublicRead:   true,
		CacheControl: "public, max-age=31536000",
	})
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return url, nil
}

// limitWidth re-encodes raw at maxWidth when it is wider, keeping the aspect ratio.
func limitWidth(raw []byte, ext string, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		return raw, nil
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}
	if img.Bounds().Dx() <= maxWidth {
		return raw, nil
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}
	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
