package enum

// icon classes shown on the toggle button. the icon shows the mode the user can switch to.
const (
	iconSun  = "fas fa-sun"
	iconMoon = "fas fa-moon"
)

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Icon returns the icon class for the theme: sun when dark is active, moon when light is active.
func (t Theme) Icon() string {
	if t == ThemeLight {
		return iconMoon
	}
	return iconSun
}

// ResolveTheme maps any attribute or stored value to a theme.
// Only "light" selects the light theme, everything else, including empty, resolves to dark.
func ResolveTheme(v string) Theme {
	if t, err := ParseTheme(v); err == nil {
		return t
	}
	return ThemeDark
}
