// Package web holds the embedded page templates and stylesheet.
package web

import "embed"

//go:embed templates static
var FS embed.FS
