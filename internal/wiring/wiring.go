// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wpmdb/internal/adapters/env"
	_ "go.trai.ch/wpmdb/internal/adapters/fs"
	_ "go.trai.ch/wpmdb/internal/adapters/httpfetch"
	_ "go.trai.ch/wpmdb/internal/adapters/lockstore"
	_ "go.trai.ch/wpmdb/internal/adapters/logger"
	_ "go.trai.ch/wpmdb/internal/adapters/manifest"
	_ "go.trai.ch/wpmdb/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/wpmdb/internal/app"
)
