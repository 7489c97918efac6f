package preference

import (
	"context"
	"errors"
)

// Theme is the persisted display preference. It used to live in browser
// storage; it now goes through an explicit store so the front end stays
// stateless.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", ErrInvalidTheme
	}
}

type Store interface {
	// GetTheme returns the stored theme, or "" when none has been set.
	GetTheme(ctx context.Context) (Theme, error)
	SetTheme(ctx context.Context, t Theme) error
}
