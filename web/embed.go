package web

import "embed"

// FS contains all embedded static web assets.
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static
var FS embed.FS
