package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/daynight/app/enum"
	"github.com/umputun/daynight/app/server/internal"
	"github.com/umputun/daynight/app/server/internal/mocks"
	"github.com/umputun/daynight/app/store"
)

func TestHandler_HandleGet(t *testing.T) {
	h := New(nil, Config{})

	t.Run("default dark", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.handleGet(rec, httptest.NewRequest(http.MethodGet, "/api/v1/theme", http.NoBody))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, themeResponse{Theme: "dark", Icon: "fas fa-sun"}, resp)
	})

	t.Run("stored light", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/theme", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "light"})
		rec := httptest.NewRecorder()
		h.handleGet(rec, req)

		assert.Equal(t, themeResponse{Theme: "light", Icon: "fas fa-moon"}, decode(t, rec))
	})
}

func TestHandler_HandleToggle(t *testing.T) {
	data := map[string]string{}
	st := &mocks.PrefStoreMock{
		GetFunc: func(_ context.Context, scope, key string) (string, error) {
			v, ok := data[scope+"/"+key]
			if !ok {
				return "", store.ErrNotFound
			}
			return v, nil
		},
		SetFunc: func(_ context.Context, scope, key, value string) error {
			data[scope+"/"+key] = value
			return nil
		},
	}
	h := New(st, Config{Storage: enum.StorageDB})

	rec := httptest.NewRecorder()
	h.handleToggle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/theme/toggle", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, themeResponse{Theme: "light", Icon: "fas fa-moon"}, decode(t, rec))

	var client *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == internal.ClientCookieName {
			client = c
		}
	}
	require.NotNil(t, client)
	assert.Equal(t, "light", data[client.Value+"/theme"])

	req := httptest.NewRequest(http.MethodPost, "/api/v1/theme/toggle", http.NoBody)
	req.AddCookie(client)
	rec = httptest.NewRecorder()
	h.handleToggle(rec, req)
	assert.Equal(t, themeResponse{Theme: "dark", Icon: "fas fa-sun"}, decode(t, rec))
	assert.Equal(t, "dark", data[client.Value+"/theme"])
}

func TestHandler_Errors(t *testing.T) {
	t.Run("read failure", func(t *testing.T) {
		st := &mocks.PrefStoreMock{
			GetFunc: func(context.Context, string, string) (string, error) { return "", assert.AnError },
		}
		h := New(st, Config{Storage: enum.StorageDB})

		rec := httptest.NewRecorder()
		h.handleGet(rec, httptest.NewRequest(http.MethodGet, "/api/v1/theme", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "failed to read theme")
	})

	t.Run("write failure", func(t *testing.T) {
		st := &mocks.PrefStoreMock{
			GetFunc: func(context.Context, string, string) (string, error) { return "dark", nil },
			SetFunc: func(context.Context, string, string, string) error { return assert.AnError },
		}
		h := New(st, Config{Storage: enum.StorageDB})

		rec := httptest.NewRecorder()
		h.handleToggle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/theme/toggle", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "failed to toggle theme")
	})
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) themeResponse {
	t.Helper()
	var resp themeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
