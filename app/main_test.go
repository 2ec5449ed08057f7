package main

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/daynight/app/store"
)

func TestIntegration_DBStorage(t *testing.T) {
	tmpDir := t.TempDir()
	addr := freeAddr(t)
	opts.Storage = "db"
	opts.DB = filepath.Join(tmpDir, "test.db")
	opts.CacheSize = 100
	opts.Server.Address = addr
	opts.Server.ReadTimeout = 5 * time.Second
	opts.Server.ShutdownTimeout = time.Second
	opts.Server.BaseURL = ""

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Timeout: 5 * time.Second, Jar: jar}
	base := "http://" + addr

	stop := startServer(t, base)

	// first visit creates the default
	body := get(t, client, base+"/")
	assert.Contains(t, body, `data-theme="dark"`)
	assert.Contains(t, body, `class="fas fa-sun"`)

	// toggle through the api
	resp, err := client.Post(base+"/api/v1/theme/toggle", "application/json", http.NoBody)
	require.NoError(t, err)
	var state map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "light", state["theme"])
	assert.Equal(t, "fas fa-moon", state["icon"])

	stop()

	// preference survives restart
	stop = startServer(t, base)
	body = get(t, client, base+"/signin")
	assert.Contains(t, body, `data-theme="light"`)
	assert.Contains(t, body, `id="themeIconAuth" class="fas fa-moon"`)
	stop()

	// and is in the database
	db, err := store.New(opts.DB)
	require.NoError(t, err)
	defer db.Close()
	var clientID string
	u, err := url.Parse(base + "/")
	require.NoError(t, err)
	for _, c := range jar.Cookies(u) {
		if c.Name == "daynight-client" {
			clientID = c.Value
		}
	}
	require.NotEmpty(t, clientID)
	val, err := db.Get(context.Background(), clientID, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", val)
}

func TestIntegration_CookieStorage(t *testing.T) {
	addr := freeAddr(t)
	opts.Storage = "cookie"
	opts.Server.Address = addr
	opts.Server.ReadTimeout = 5 * time.Second
	opts.Server.ShutdownTimeout = time.Second
	opts.Server.BaseURL = ""

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Timeout: 5 * time.Second, Jar: jar}
	base := "http://" + addr

	stop := startServer(t, base)
	defer stop()

	assert.Contains(t, get(t, client, base+"/"), `data-theme="dark"`)

	// plain form post redirects back to the page
	resp, err := client.PostForm(base+"/web/theme", map[string][]string{"theme": {"dark"}})
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `data-theme="light"`)

	// double toggle returns to dark
	resp, err = client.PostForm(base+"/web/theme", map[string][]string{"theme": {"light"}})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Contains(t, get(t, client, base+"/"), `data-theme="dark"`)
}

func TestRun_InvalidStorage(t *testing.T) {
	opts.Storage = "redis"
	err := run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid storage")
}

// startServer runs the server in background and returns a function stopping it.
func startServer(t *testing.T, base string) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx) }()
	waitForServer(t, base+"/ping")

	return func() {
		cancel()
		select {
		case err := <-errCh:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down in time")
		}
	}
}

func waitForServer(t *testing.T, pingURL string) {
	t.Helper()
	client := &http.Client{Timeout: time.Second}
	require.Eventually(t, func() bool {
		resp, err := client.Get(pingURL)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond, "server did not start")
}

func get(t *testing.T, client *http.Client, pageURL string) string {
	t.Helper()
	resp, err := client.Get(pageURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}
