// Package theme implements the dark/light appearance controller.
// The controller drives a document (root attribute and icon elements) from a persisted preference.
package theme

import (
	"context"
	"errors"
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/daynight/app/enum"
	"github.com/umputun/daynight/app/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/document.go -pkg mocks -skip-ensure -fmt goimports . Document

const (
	// StoreKey is the key the preference is persisted under.
	StoreKey = "theme"
	// RootAttribute is the root element attribute carrying the active theme.
	RootAttribute = "data-theme"
	// IconID is the primary toggle icon.
	IconID = "themeIcon"
	// AuthIconID is the toggle icon shown on authentication pages.
	AuthIconID = "themeIconAuth"
)

// IconIDs lists every element the controller keeps in sync with the theme.
var IconIDs = []string{IconID, AuthIconID}

// Store is a browser-scoped key/value store. Get returns store.ErrNotFound for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Document gives access to the root element attribute and to elements by id.
type Document interface {
	RootAttribute(name string) string
	SetRootAttribute(name, value string)
	// SetElementClass sets class of the element with the id, returns false if there is no such element.
	SetElementClass(id, class string) bool
}

// Controller applies and flips the theme preference.
type Controller struct {
	store Store
	doc   Document
}

// NewController makes a controller over the given store and document.
func NewController(st Store, doc Document) *Controller {
	return &Controller{store: st, doc: doc}
}

// Initialize reads the persisted theme, dark if absent, and applies it to the document.
// A missing or unrecognized value is written back as the resolved one.
func (c *Controller) Initialize(ctx context.Context) error {
	stored, err := c.store.Get(ctx, StoreKey)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to read theme: %w", err)
	}

	t := enum.ResolveTheme(stored)
	if stored != t.String() {
		if err := c.store.Set(ctx, StoreKey, t.String()); err != nil {
			return fmt.Errorf("failed to store default theme: %w", err)
		}
	}
	c.apply(t)
	return nil
}

// Toggle flips the theme currently set on the document and persists the result.
// Anything but "dark" on the root element flips to dark.
func (c *Controller) Toggle(ctx context.Context) error {
	current, err := enum.ParseTheme(c.doc.RootAttribute(RootAttribute))
	if err != nil {
		current = enum.ThemeLight
	}
	next := current.Toggle()

	c.doc.SetRootAttribute(RootAttribute, next.String())
	if err = c.store.Set(ctx, StoreKey, next.String()); err != nil {
		return fmt.Errorf("failed to store theme %s: %w", next, err)
	}
	c.UpdateIcons(next)
	log.Printf("[DEBUG] theme switched to %s", next)
	return nil
}

// UpdateIcons sets the icon class of every known icon element present in the document.
func (c *Controller) UpdateIcons(t enum.Theme) {
	for _, id := range IconIDs {
		if !c.doc.SetElementClass(id, t.Icon()) {
			log.Printf("[DEBUG] icon %q not on page, skipped", id)
		}
	}
}

// Theme returns the theme currently applied to the document.
func (c *Controller) Theme() enum.Theme {
	return enum.ResolveTheme(c.doc.RootAttribute(RootAttribute))
}

func (c *Controller) apply(t enum.Theme) {
	c.doc.SetRootAttribute(RootAttribute, t.String())
	c.UpdateIcons(t)
}
