// Package handler holds shared constants and the common interface for the
// page handler packages below it.
package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path of the route group.
	RootPath = "/"

	// ErrNilDepsFatalLogMsg is used if the app, cfg, client or manager
	// pointer is nil.
	ErrNilDepsFatalLogMsg = "app, cfg, client or manager is nil"
)
