// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ferry/internal/adapters/config"
	_ "go.trai.ch/ferry/internal/adapters/logger"
	_ "go.trai.ch/ferry/internal/adapters/shell"
	_ "go.trai.ch/ferry/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/ferry/internal/app"
)
