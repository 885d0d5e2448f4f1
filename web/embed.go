// Package web provides the embedded static assets for the web UI.
package web

import (
	"embed"
	"io/fs"
)

// StaticFS contains the embedded static assets (HTML, CSS, JS).
//
//go:embed all:static
var StaticFS embed.FS

// Static returns the assets rooted at the static directory.
func Static() (fs.FS, error) {
	return fs.Sub(StaticFS, "static")
}
