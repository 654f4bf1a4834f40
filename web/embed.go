// Package web carries the storefront page, compiled into the binary so the
// server ships as a single artifact.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
