package disk

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*YandexClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewYandexClientWithBaseURL("test-token", srv.URL, zap.NewNop()), srv
}

func TestExists(t *testing.T) {
	var gotAuth, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Query().Get("path")
		if gotPath == "/Tables/Students.xlsx" {
			w.Write([]byte(`{"name": "Students.xlsx"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "not found", "description": "Resource not found"}`))
	}))
	ctx := context.Background()

	ok, err := client.Exists(ctx, "/Tables/Students.xlsx")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "OAuth test-token", gotAuth)

	// 404 — это ответ «нет файла», а не ошибка
	ok, err = client.Exists(ctx, "/Tables/missing.xlsx")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMkdirIdempotent(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPut, r.Method)
		if calls > 1 {
			// Повторное создание: диск отвечает конфликтом
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"description": "Specified path already exists"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"href": "..."}`))
	}))

	require.NoError(t, client.Mkdir(context.Background(), "/Tables"))
	require.NoError(t, client.Mkdir(context.Background(), "/Tables"))
}

func TestDownloadFollowsHref(t *testing.T) {
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/resources/download", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"href": "` + srv.URL + `/content"}`))
	})
	mux.HandleFunc("/content", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("xlsx-bytes"))
	})
	client, s := newTestClient(t, mux)
	srv = s

	local := filepath.Join(t.TempDir(), "staging.xlsx")
	require.NoError(t, client.Download(context.Background(), "/Tables/Students.xlsx", local))

	data, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, "xlsx-bytes", string(data))
}

func TestUploadFollowsHref(t *testing.T) {
	var srv *httptest.Server
	var uploaded []byte
	var overwrite string

	mux := http.NewServeMux()
	mux.HandleFunc("/resources/upload", func(w http.ResponseWriter, r *http.Request) {
		overwrite = r.URL.Query().Get("overwrite")
		w.Write([]byte(`{"href": "` + srv.URL + `/put-here"}`))
	})
	mux.HandleFunc("/put-here", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		uploaded = body
		w.WriteHeader(http.StatusCreated)
	})
	client, s := newTestClient(t, mux)
	srv = s

	local := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, os.WriteFile(local, []byte("new-content"), 0o644))

	require.NoError(t, client.Upload(context.Background(), local, "/Tables/Students.xlsx", true))
	assert.Equal(t, "true", overwrite)
	assert.Equal(t, "new-content", string(uploaded))
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"name": "ok"}`))
	}))

	ok, err := client.Exists(context.Background(), "/Tables")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"description": "Forbidden"}`))
	}))

	_, err := client.Exists(context.Background(), "/Tables")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, int32(1), calls.Load())
}
