package domain

import (
	"context"
	"errors"
	"testing"
)

func TestServiceErrorMatchesSentinel(t *testing.T) {
	err := &ServiceError{Op: "generate", Err: context.DeadlineExceeded}

	if !errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("expected errors.Is(err, ErrServiceUnavailable)")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected cause to be preserved")
	}

	bare := &ServiceError{Op: "generate"}
	if !errors.Is(bare, ErrServiceUnavailable) {
		t.Errorf("expected bare service error to match sentinel")
	}
	if bare.Error() != "generate: formalization service unavailable" {
		t.Errorf("unexpected message %q", bare.Error())
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Errorf("toggle must flip between light and dark")
	}
	if ThemeDark.String() != "dark" || ThemeLight.String() != "light" {
		t.Errorf("unexpected theme names")
	}
}
