package web

import "embed"

// StaticFS embeds the single-page web client.
//
//go:embed static
var StaticFS embed.FS
