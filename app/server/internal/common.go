// Package internal provides shared utilities for server subpackages.
package internal

import (
	"context"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/daynight/app/enum"
	"github.com/umputun/daynight/app/store"
	"github.com/umputun/daynight/app/theme"
)

// ClientCookieName is the cookie carrying the browser's client id in db storage mode.
const ClientCookieName = "daynight-client"

const cookieMaxAge = 365 * 24 * 60 * 60 // 1 year

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

// PrefStore is the server-side preference storage, scoped per browser.
type PrefStore interface {
	Get(ctx context.Context, scope, key string) (string, error)
	Set(ctx context.Context, scope, key, value string) error
}

// CookieOptions defines attributes of cookies set by the service.
type CookieOptions struct {
	Path     string
	Secure   bool
	HTTPOnly bool
}

// Resolver picks the browser-scoped store for a request.
type Resolver struct {
	Storage enum.Storage
	Prefs   PrefStore // used in db mode only
	Cookie  CookieOptions
}

// Store returns the theme store of the browser sending r.
// In cookie mode values live in cookies, in db mode they are rows scoped by the client id cookie.
func (rs Resolver) Store(w http.ResponseWriter, r *http.Request) theme.Store {
	if rs.Storage == enum.StorageDB && rs.Prefs != nil {
		return &ScopedStore{prefs: rs.Prefs, scope: ClientID(w, r, rs.Cookie)}
	}
	return NewCookieStore(w, r, rs.Cookie)
}

// ClientID returns the client id of the browser, issuing a new one if the cookie is missing or malformed.
func ClientID(w http.ResponseWriter, r *http.Request, opts CookieOptions) string {
	if c, err := r.Cookie(ClientCookieName); err == nil {
		if id, parseErr := uuid.Parse(c.Value); parseErr == nil {
			return id.String()
		}
		log.Printf("[DEBUG] ignore malformed client id %q", c.Value)
	}
	id := uuid.NewString()
	setCookie(w, opts, ClientCookieName, id)
	// make the id visible to later reads within the same request
	r.AddCookie(&http.Cookie{Name: ClientCookieName, Value: id})
	return id
}

// ScopedStore is a key/value view of PrefStore limited to one browser.
type ScopedStore struct {
	prefs PrefStore
	scope string
}

// Get returns the value for key in the browser's scope.
func (s *ScopedStore) Get(ctx context.Context, key string) (string, error) {
	return s.prefs.Get(ctx, s.scope, key) //nolint:wrapcheck // pass through, callers check ErrNotFound
}

// Set stores the value for key in the browser's scope.
func (s *ScopedStore) Set(ctx context.Context, key, value string) error {
	return s.prefs.Set(ctx, s.scope, key, value) //nolint:wrapcheck // already wrapped by the backend
}

// CookieStore keeps values in cookies of a single request/response pair.
type CookieStore struct {
	r       *http.Request
	w       http.ResponseWriter
	opts    CookieOptions
	written map[string]string
}

// NewCookieStore makes a cookie-backed store for the request.
func NewCookieStore(w http.ResponseWriter, r *http.Request, opts CookieOptions) *CookieStore {
	return &CookieStore{r: r, w: w, opts: opts, written: map[string]string{}}
}

// Get returns the value set earlier in this request or sent by the browser, store.ErrNotFound otherwise.
func (c *CookieStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := c.written[key]; ok {
		return v, nil
	}
	cookie, err := c.r.Cookie(key)
	if err != nil || cookie.Value == "" {
		return "", store.ErrNotFound
	}
	return cookie.Value, nil
}

// Set sends the value to the browser as a cookie.
func (c *CookieStore) Set(_ context.Context, key, value string) error {
	c.written[key] = value
	setCookie(c.w, c.opts, key, value)
	return nil
}

func setCookie(w http.ResponseWriter, opts CookieOptions, name, value string) {
	path := opts.Path
	if path == "" {
		path = "/"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   cookieMaxAge,
		HttpOnly: opts.HTTPOnly,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
