package config

import (
	"net"
	"strconv"
	"time"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/logger"
)

// DefaultSessionExpiry is the fixed lifetime of a login session.
const DefaultSessionExpiry = 7 * 24 * time.Hour

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Backend holds the connection settings for the remote portfolio API.
type Backend struct {
	// URL is the base URL of the portfolio REST API, e.g. "https://api.example.com/api".
	URL string

	// Timeout is the per-request timeout towards the API.
	Timeout time.Duration

	// TrustCacheOnNetworkError keeps a locally cached session when the
	// profile revalidation call cannot reach the backend at all. A 401
	// response always invalidates the session regardless of this flag.
	// Defaults to true when absent from the config file.
	TrustCacheOnNetworkError *bool
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Backend   Backend
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic bool    // enable static file browsing (for development purposes only)
	Domain       string  // domain name for the webserver
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver
	Session      Session // session settings
}

// ListenAddr returns the listen address for the webserver.
func (w Webserver) ListenAddr() string {
	return net.JoinHostPort("", strconv.Itoa(w.Port))
}
