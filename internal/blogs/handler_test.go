package blogs

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioreel/website/internal/media"
	"github.com/studioreel/website/internal/models"
	"github.com/studioreel/website/internal/webtest"
)

type fakeStore struct {
	mu      sync.Mutex
	blogs   map[uuid.UUID]models.Blog
	order   []uuid.UUID
	listErr error
	getErr  error
}

func newFakeStore(seed ...models.Blog) *fakeStore {
	f := &fakeStore{blogs: make(map[uuid.UUID]models.Blog)}
	for _, b := range seed {
		f.blogs[b.ID] = b
		f.order = append(f.order, b.ID)
	}
	return f
}

func (f *fakeStore) Create(_ context.Context, b *models.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	f.blogs[b.ID] = *b
	f.order = append([]uuid.UUID{b.ID}, f.order...)
	return nil
}

func (f *fakeStore) List(context.Context) ([]models.Blog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []models.Blog{}
	for _, id := range f.order {
		if b, ok := f.blogs[id]; ok {
			list = append(list, b)
		}
	}
	return list, nil
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*models.Blog, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.blogs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &b, nil
}

func (f *fakeStore) Update(_ context.Context, id uuid.UUID, u models.BlogUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.blogs[id]
	if !ok {
		return models.ErrNotFound
	}
	b.Title, b.Paragraph1, b.Paragraph2, b.Quote = u.Title, u.Paragraph1, u.Paragraph2, u.Quote
	if u.ImageURL != nil {
		b.ImageURL = u.ImageURL
	}
	f.blogs[id] = b
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.blogs, id)
	return nil
}

type fakeUploader struct {
	uploads []string
	err     error
}

func (f *fakeUploader) Upload(_ context.Context, fh *multipart.FileHeader, p media.Params) (media.Object, error) {
	if f.err != nil {
		return media.Object{}, f.err
	}
	ref := p.Folder + "/" + fh.Filename
	f.uploads = append(f.uploads, ref)
	return media.Object{URL: "https://cdn.test/" + ref, Ref: ref}, nil
}

func newRouter(store *fakeStore, up *fakeUploader) http.Handler {
	h := NewHandler(store, up, nil)
	r := webtest.NewRouter()
	r.GET("/blogs", h.List)
	r.GET("/blog/:id", h.Show)
	r.GET("/admin/blogs/add", h.AddPage)
	r.POST("/admin/blogs/add", h.Add)
	r.GET("/admin/blogs/edit/:id", h.EditPage)
	r.POST("/admin/blogs/edit/:id", h.Edit)
	r.GET("/admin/blogs/delete/:id", h.Delete)
	return r
}

func strPtr(s string) *string { return &s }

func jpg(name string) *webtest.File {
	return &webtest.File{Field: "image", Filename: name, ContentType: "image/jpeg", Content: []byte{0xff, 0xd8}}
}

func validFields() map[string]string {
	return map[string]string{"title": " Behind the shoot ", "paragraph1": "First", "paragraph2": "Second", "quote": ""}
}

func TestList(t *testing.T) {
	newer := models.Blog{ID: uuid.New(), Title: "Newer post", CreatedAt: time.Now()}
	older := models.Blog{ID: uuid.New(), Title: "Older post", CreatedAt: time.Now().Add(-time.Hour)}
	w := webtest.Get(newRouter(newFakeStore(newer, older), &fakeUploader{}), "/blogs")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Less(t, strings.Index(body, "Newer post"), strings.Index(body, "Older post"))
}

func TestList_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("db down")
	w := webtest.Get(newRouter(store, &fakeUploader{}), "/blogs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No posts yet.")
}

func TestShow(t *testing.T) {
	b := models.Blog{ID: uuid.New(), Title: "Lookbook day", Paragraph1: "p1", Paragraph2: "p2", Quote: "Light first", ImageURL: strPtr("https://cdn.test/x.jpg")}
	store := newFakeStore(b)
	r := newRouter(store, &fakeUploader{})

	w := webtest.Get(r, "/blog/"+b.ID.String())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lookbook day")
	assert.Contains(t, w.Body.String(), "https://cdn.test/x.jpg")

	w = webtest.Get(r, "/blog/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Blog not found")

	w = webtest.Get(r, "/blog/not-a-uuid")
	assert.Equal(t, http.StatusNotFound, w.Code)

	store.getErr = errors.New("db down")
	w = webtest.Get(r, "/blog/"+b.ID.String())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error")
}

func TestAdd(t *testing.T) {
	store := newFakeStore()
	up := &fakeUploader{}
	r := newRouter(store, up)

	w := webtest.PostMultipart(t, r, "/admin/blogs/add", validFields(), jpg("cover.jpg"))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	list, _ := store.List(context.Background())
	require.Len(t, list, 1)
	assert.Equal(t, "Behind the shoot", list[0].Title)
	assert.Equal(t, "", list[0].Quote)
	require.NotNil(t, list[0].ImageURL)
	assert.Equal(t, "https://cdn.test/blog-images/cover.jpg", *list[0].ImageURL)

	w = webtest.PostMultipart(t, r, "/admin/blogs/add", validFields(), nil)
	assert.Equal(t, http.StatusFound, w.Code)
	list, _ = store.List(context.Background())
	require.Len(t, list, 2)
	assert.Nil(t, list[0].ImageURL)
}

func TestAdd_MissingFields(t *testing.T) {
	store := newFakeStore()
	up := &fakeUploader{}

	w := webtest.PostMultipart(t, newRouter(store, up), "/admin/blogs/add",
		map[string]string{"title": "Draft", "paragraph1": "  "}, jpg("cover.jpg"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Paragraph 1 is required")
	assert.Contains(t, w.Body.String(), `value="Draft"`)
	assert.Empty(t, store.blogs)
	assert.Empty(t, up.uploads)
}

func TestAdd_UploadFailure(t *testing.T) {
	store := newFakeStore()
	w := webtest.PostMultipart(t, newRouter(store, &fakeUploader{err: media.ErrUnsupportedType}), "/admin/blogs/add", validFields(), jpg("cover.bmp"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported file type.")
	assert.Empty(t, store.blogs)
}

func TestEdit_KeepsImageWithoutFile(t *testing.T) {
	b := models.Blog{ID: uuid.New(), Title: "Old", Paragraph1: "a", Paragraph2: "b", ImageURL: strPtr("https://cdn.test/old.jpg")}
	store := newFakeStore(b)
	up := &fakeUploader{}

	w := webtest.PostMultipart(t, newRouter(store, up), "/admin/blogs/edit/"+b.ID.String(), validFields(), nil)

	assert.Equal(t, http.StatusFound, w.Code)
	got := store.blogs[b.ID]
	assert.Equal(t, "Behind the shoot", got.Title)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "https://cdn.test/old.jpg", *got.ImageURL)
	assert.Empty(t, up.uploads)
}

func TestEdit_ReplacesImage(t *testing.T) {
	b := models.Blog{ID: uuid.New(), Title: "Old", Paragraph1: "a", Paragraph2: "b", ImageURL: strPtr("https://cdn.test/old.jpg")}
	store := newFakeStore(b)
	up := &fakeUploader{}

	w := webtest.PostMultipart(t, newRouter(store, up), "/admin/blogs/edit/"+b.ID.String(), validFields(), jpg("new.jpg"))

	assert.Equal(t, http.StatusFound, w.Code)
	got := store.blogs[b.ID]
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "https://cdn.test/blog-images/new.jpg", *got.ImageURL)
	assert.Equal(t, []string{"blog-images/new.jpg"}, up.uploads)
}

func TestEdit_InvalidRerendersWithInput(t *testing.T) {
	b := models.Blog{ID: uuid.New(), Title: "Old", Paragraph1: "a", Paragraph2: "b"}
	store := newFakeStore(b)

	w := webtest.PostMultipart(t, newRouter(store, &fakeUploader{}), "/admin/blogs/edit/"+b.ID.String(),
		map[string]string{"title": "Typed title", "paragraph1": "x", "paragraph2": ""}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Paragraph 2 is required")
	assert.Contains(t, w.Body.String(), `value="Typed title"`)
	assert.Equal(t, "Old", store.blogs[b.ID].Title)
}

func TestEditPage_UnknownGoesToDashboard(t *testing.T) {
	r := newRouter(newFakeStore(), &fakeUploader{})
	for _, id := range []string{uuid.NewString(), "nope"} {
		w := webtest.Get(r, "/admin/blogs/edit/"+id)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	}
}

func TestDelete(t *testing.T) {
	b := models.Blog{ID: uuid.New(), Title: "Bye", ImageURL: strPtr("https://cdn.test/x.jpg")}
	store := newFakeStore(b)
	r := newRouter(store, &fakeUploader{})

	w := webtest.Get(r, "/admin/blogs/delete/"+b.ID.String())
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, store.blogs)

	w = webtest.Get(r, "/admin/blogs/delete/garbage")
	assert.Equal(t, http.StatusFound, w.Code)
}
