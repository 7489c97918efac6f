package preference

import (
	"context"
	"fmt"

	"github.com/dinakaran-k/portfolio-api/internal/domain/preference"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
)

type ThemeUseCase struct {
	store        preference.Store
	defaultTheme preference.Theme
}

func NewThemeUseCase(store preference.Store, defaultTheme preference.Theme) *ThemeUseCase {
	if defaultTheme == "" {
		defaultTheme = preference.ThemeLight
	}
	return &ThemeUseCase{store: store, defaultTheme: defaultTheme}
}

type GetThemeOutput struct {
	Theme preference.Theme
}

func (uc *ThemeUseCase) ExecuteGetTheme(ctx context.Context) (*GetThemeOutput, error) {
	theme, err := uc.store.GetTheme(ctx)
	if err != nil {
		return nil, fmt.Errorf("read theme preference failed: %w", err)
	}
	if theme == "" {
		theme = uc.defaultTheme
	}
	return &GetThemeOutput{Theme: theme}, nil
}

type SetThemeInput struct {
	Theme string
}

func (uc *ThemeUseCase) ExecuteSetTheme(ctx context.Context, input SetThemeInput) error {
	theme, err := preference.ParseTheme(input.Theme)
	if err != nil {
		return apperror.NewInvalidInput("theme must be 'light' or 'dark'", err)
	}
	if err := uc.store.SetTheme(ctx, theme); err != nil {
		return fmt.Errorf("store theme preference failed: %w", err)
	}
	return nil
}
