// Package tools provides MCP tool handlers and registration.
package tools

import (
	"log/slog"

	"github.com/rvisser/bowlink/internal/service"
	"github.com/rvisser/bowlink/internal/store"
)

// Dependencies holds shared services for tool handlers.
// Passed to handler factories via closure capture.
type Dependencies struct {
	Store  *store.Client
	Linker *service.LinkerService
	Logger *slog.Logger
}
