// Package main provides the entry point for the portfolio administration
// application. It runs a web server using the Fiber framework that renders
// the public portfolio pages (blog, projects, about) and an authentication
// gated dashboard for managing that content. All content is owned by a
// remote portfolio REST API; this application holds no database of its own
// and keeps the login session in client-side cookies.
package main
