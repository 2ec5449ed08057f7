package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/daynight/app/theme"
)

// handleIndex renders the main page, it carries the primary toggle icon.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "index.html", theme.IconID)
}

// handleSignin renders the sign-in page, it carries the authentication-context toggle icon.
func (h *Handler) handleSignin(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "signin.html", theme.AuthIconID)
}

// renderPage initializes the theme of a page with the given icon elements and renders it.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, iconIDs ...string) {
	page := theme.NewPage(iconIDs...)
	ctrl := theme.NewController(h.resolver.Store(w, r), page)
	if err := ctrl.Initialize(r.Context()); err != nil {
		log.Printf("[ERROR] failed to initialize theme: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	data := templateData{
		Page:    page,
		Theme:   ctrl.Theme().String(),
		BaseURL: h.baseURL,
		Version: h.version,
	}
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] failed to execute template %s: %v", name, err)
	}
}

// handleThemeToggle toggles the theme between light and dark.
// Form field "theme" carries the theme shown by the page; if missing the persisted one is used.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	page := theme.NewPage(theme.IconIDs...)
	ctrl := theme.NewController(h.resolver.Store(w, r), page)

	if current := r.FormValue("theme"); current != "" {
		page.SetRootAttribute(theme.RootAttribute, current)
	} else if err := ctrl.Initialize(r.Context()); err != nil {
		log.Printf("[ERROR] failed to initialize theme: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := ctrl.Toggle(r.Context()); err != nil {
		log.Printf("[ERROR] failed to toggle theme: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, h.returnPath(r), http.StatusSeeOther)
		return
	}

	t := ctrl.Theme()
	trigger, err := json.Marshal(map[string]any{
		"themeChanged": map[string]string{"theme": t.String(), "icon": t.Icon()},
	})
	if err == nil {
		w.Header().Set("HX-Trigger", string(trigger))
	}
	// trigger full page refresh
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}

// returnPath returns the local path the toggle was posted from, the index page otherwise.
func (h *Handler) returnPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, h.cookiePath()) {
		return h.url("/")
	}
	if ref.Host != "" && ref.Host != r.Host {
		return h.url("/")
	}
	return ref.Path
}
