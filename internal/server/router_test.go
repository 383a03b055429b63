package server

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioreel/website/internal/auth"
	"github.com/studioreel/website/internal/blogs"
	"github.com/studioreel/website/internal/contacts"
	"github.com/studioreel/website/internal/dashboard"
	"github.com/studioreel/website/internal/demos"
	"github.com/studioreel/website/internal/media"
	"github.com/studioreel/website/internal/models"
	"github.com/studioreel/website/internal/videos"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type sessionStore struct {
	mu sync.Mutex
	m  map[string]auth.Session
}

func (s *sessionStore) Save(_ context.Context, sess *auth.Session, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sess.ID] = *sess
	return nil
}

func (s *sessionStore) Get(_ context.Context, id string) (*auth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[id]
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *sessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}

type videoStore struct{ items []models.Video }

func (s *videoStore) Create(_ context.Context, v *models.Video) error {
	v.ID = uuid.New()
	s.items = append([]models.Video{*v}, s.items...)
	return nil
}
func (s *videoStore) List(context.Context) ([]models.Video, error) { return s.items, nil }
func (s *videoStore) GetByID(_ context.Context, id uuid.UUID) (*models.Video, error) {
	for _, v := range s.items {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, models.ErrNotFound
}
func (s *videoStore) Delete(_ context.Context, id uuid.UUID) error { return nil }

type blogStore struct{ items []models.Blog }

func (s *blogStore) Create(_ context.Context, b *models.Blog) error {
	b.ID = uuid.New()
	s.items = append([]models.Blog{*b}, s.items...)
	return nil
}
func (s *blogStore) List(context.Context) ([]models.Blog, error) { return s.items, nil }
func (s *blogStore) GetByID(context.Context, uuid.UUID) (*models.Blog, error) {
	return nil, models.ErrNotFound
}
func (s *blogStore) Update(context.Context, uuid.UUID, models.BlogUpdate) error { return nil }
func (s *blogStore) Delete(context.Context, uuid.UUID) error                    { return nil }

type leadStore struct{ items []models.Lead }

func (s *leadStore) Create(_ context.Context, l *models.Lead) error {
	l.ID = uuid.New()
	s.items = append([]models.Lead{*l}, s.items...)
	return nil
}
func (s *leadStore) List(context.Context) ([]models.Lead, error) { return s.items, nil }
func (s *leadStore) Delete(context.Context, uuid.UUID) error     { return nil }

type demoStore struct{ items []models.DemoRequest }

func (s *demoStore) Create(_ context.Context, mobile string) (*models.DemoRequest, error) {
	for _, d := range s.items {
		if d.Mobile == mobile {
			return nil, models.ErrAlreadyRegistered
		}
	}
	d := models.DemoRequest{ID: uuid.New(), Mobile: mobile}
	s.items = append([]models.DemoRequest{d}, s.items...)
	return &d, nil
}
func (s *demoStore) List(context.Context) ([]models.DemoRequest, error) { return s.items, nil }

type nopMedia struct{}

func (nopMedia) Upload(_ context.Context, fh *multipart.FileHeader, p media.Params) (media.Object, error) {
	return media.Object{URL: "https://cdn.test/" + fh.Filename, Ref: p.Folder + "/" + fh.Filename}, nil
}
func (nopMedia) Delete(context.Context, string, media.Kind) error { return nil }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	sessions := auth.NewManager(&sessionStore{m: map[string]auth.Session{}}, "secret", time.Hour)
	vs, bs, ls, ds := &videoStore{}, &blogStore{}, &leadStore{}, &demoStore{}
	h := Handlers{
		Auth:     auth.NewHandler(sessions, auth.Credentials{Username: "admin", Password: "pw"}, false, nil),
		Videos:   videos.NewHandler(vs, nopMedia{}, nil),
		Blogs:    blogs.NewHandler(bs, nopMedia{}, nil),
		Contacts: contacts.NewHandler(ls, nil),
		Demos:    demos.NewHandler(ds, nil),
		Dashboard: dashboard.NewHandler(dashboard.Sources{
			Videos: vs, Blogs: bs, Contacts: ls, Demos: ds,
		}, nil),
	}
	return NewRouter(h, sessions, 32<<20, nil)
}

func do(h http.Handler, method, target string, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthAndStatic(t *testing.T) {
	srv := newTestServer(t)

	w := do(srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(srv, http.MethodGet, "/static/site.css", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(srv, http.MethodGet, "/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	srv := newTestServer(t)
	for _, p := range []string{
		"/admin/dashboard", "/admin/contacts", "/admin/videos/add/reel", "/admin/blogs/add",
		"/admin/blogs/edit/" + uuid.NewString(), "/admin/videos/delete/" + uuid.NewString(),
	} {
		w := do(srv, http.MethodGet, p, "", nil)
		assert.Equal(t, http.StatusFound, w.Code, p)
		assert.Equal(t, auth.LoginPath, w.Header().Get("Location"), p)
	}
}

func TestAdminSessionFlow(t *testing.T) {
	srv := newTestServer(t)

	w := do(srv, http.MethodPost, auth.LoginPath, url.Values{"username": {"admin"}, "password": {"pw"}}.Encode(), nil)
	require.Equal(t, http.StatusFound, w.Code)
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	w = do(srv, http.MethodPost, "/book-demo", url.Values{"mobile": {"9876543210"}}.Encode(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(srv, http.MethodGet, "/admin/dashboard", "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "9876543210")

	w = do(srv, http.MethodGet, "/admin/logout", "", cookie)
	assert.Equal(t, http.StatusFound, w.Code)

	w = do(srv, http.MethodGet, "/admin/dashboard", "", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, auth.LoginPath, w.Header().Get("Location"))
}
