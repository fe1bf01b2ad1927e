package app

import (
	"go.trai.ch/wpmdb/internal/core/ports"
)

// Components contains the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(application *App, log ports.Logger) *Components {
	return &Components{
		App:    application,
		Logger: log,
	}
}
