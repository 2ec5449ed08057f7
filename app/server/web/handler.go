// Package web provides HTTP handlers for the web UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/daynight/app/enum"
	"github.com/umputun/daynight/app/server/internal"
	"github.com/umputun/daynight/app/theme"
)

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Config holds web handler configuration.
type Config struct {
	BaseURL       string
	Version       string
	Storage       enum.Storage
	SecureCookies bool
	HTTPOnly      bool
}

// Handler handles web UI requests.
type Handler struct {
	resolver internal.Resolver
	tmpl     *template.Template
	baseURL  string
	version  string
}

// New creates a new web handler. st is used in db storage mode and may be nil in cookie mode.
func New(st internal.PrefStore, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	h := &Handler{tmpl: tmpl, baseURL: cfg.BaseURL, version: cfg.Version}
	h.resolver = internal.Resolver{
		Storage: cfg.Storage,
		Prefs:   st,
		Cookie:  internal.CookieOptions{Path: h.cookiePath(), Secure: cfg.SecureCookies, HTTPOnly: cfg.HTTPOnly},
	}
	return h, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /signin", h.handleSignin)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"dict": dict,
	}
}

// dict builds a map from key/value pairs, used to pass several values to a sub-template.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict requires key/value pairs, got %d args", len(pairs))
	}
	res := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		res[key] = pairs[i+1]
	}
	return res, nil
}

// parseTemplates parses the layout and all pages from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Page    *theme.Page
	Theme   string // active theme, same as the page root attribute
	BaseURL string
	Version string
}

// IconClass returns the class of the icon element, so templates don't need to know the ids.
func (d templateData) IconClass(id string) string { return d.Page.ElementClass(id) }

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}
