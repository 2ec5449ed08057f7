// Package api provides JSON handlers for reading and toggling the theme preference.
package api

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/daynight/app/enum"
	"github.com/umputun/daynight/app/server/internal"
	"github.com/umputun/daynight/app/theme"
)

// Config holds API handler configuration.
type Config struct {
	Storage       enum.Storage
	CookiePath    string
	SecureCookies bool
	HTTPOnly      bool
}

// Handler handles API requests for /api/v1/* endpoints.
type Handler struct {
	resolver internal.Resolver
}

// themeResponse is the JSON view of the active theme.
type themeResponse struct {
	Theme string `json:"theme"`
	Icon  string `json:"icon"`
}

// New creates a new API handler. st is used in db storage mode and may be nil in cookie mode.
func New(st internal.PrefStore, cfg Config) *Handler {
	return &Handler{resolver: internal.Resolver{
		Storage: cfg.Storage,
		Prefs:   st,
		Cookie:  internal.CookieOptions{Path: cfg.CookiePath, Secure: cfg.SecureCookies, HTTPOnly: cfg.HTTPOnly},
	}}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGet)
	r.HandleFunc("POST /theme/toggle", h.handleToggle)
}

// handleGet returns the persisted theme, creating the default on first contact.
// GET /api/v1/theme
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctrl := theme.NewController(h.resolver.Store(w, r), theme.NewPage())
	if err := ctrl.Initialize(r.Context()); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to read theme")
		return
	}
	rest.RenderJSON(w, toResponse(ctrl.Theme()))
}

// handleToggle flips the persisted theme and returns the new one.
// POST /api/v1/theme/toggle
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	ctrl := theme.NewController(h.resolver.Store(w, r), theme.NewPage())
	// api callers have no page, the document starts from the persisted state
	if err := ctrl.Initialize(r.Context()); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to read theme")
		return
	}
	if err := ctrl.Toggle(r.Context()); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to toggle theme")
		return
	}
	rest.RenderJSON(w, toResponse(ctrl.Theme()))
}

func toResponse(t enum.Theme) themeResponse {
	return themeResponse{Theme: t.String(), Icon: t.Icon()}
}
