package demos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioreel/website/internal/models"
	"github.com/studioreel/website/internal/webtest"
)

type fakeStore struct {
	mu      sync.Mutex
	byPhone map[string]models.DemoRequest
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{byPhone: make(map[string]models.DemoRequest)}
}

func (f *fakeStore) Create(_ context.Context, mobile string) (*models.DemoRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byPhone[mobile]; ok {
		return nil, models.ErrAlreadyRegistered
	}
	d := models.DemoRequest{ID: uuid.New(), Mobile: mobile, CreatedAt: time.Now()}
	f.byPhone[mobile] = d
	return &d, nil
}

func newRouter(store Store) http.Handler {
	r := webtest.NewRouter()
	r.POST("/book-demo", NewHandler(store, nil).Book)
	return r
}

func decode(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestBook_TwiceRegistersOnce(t *testing.T) {
	store := newFakeStore()
	r := newRouter(store)

	w := webtest.PostJSON(r, "/book-demo", `{"mobile":"9876543210"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"success": true, "message": "Thank you! We will contact you soon."}, decode(t, w.Body.Bytes()))

	w = webtest.PostForm(r, "/book-demo", url.Values{"mobile": {" 9876543210 "}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"message": "This number is already registered!"}, decode(t, w.Body.Bytes()))

	assert.Len(t, store.byPhone, 1)
}

func TestBook_InvalidMobile(t *testing.T) {
	store := newFakeStore()
	r := newRouter(store)

	for _, body := range []string{`{"mobile":"12345"}`, `{"mobile":"5876543210"}`, `{}`, ``, `{"mobile":"98765432100"}`} {
		w := webtest.PostJSON(r, "/book-demo", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, map[string]interface{}{"error": "Invalid mobile number"}, decode(t, w.Body.Bytes()))
	}
	assert.Empty(t, store.byPhone)
}

func TestBook_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("db down")

	w := webtest.PostForm(newRouter(store), "/book-demo", url.Values{"mobile": {"9876543210"}})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]interface{}{"error": "Server error"}, decode(t, w.Body.Bytes()))
}
