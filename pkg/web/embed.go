// Package web embeds the stylesheet and page script served under /static.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var content embed.FS

// StaticFS returns the assets rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// static/ is embedded at build time
		panic(err)
	}
	return sub
}
