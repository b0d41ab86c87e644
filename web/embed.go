// Package web embeds the default storefront entry file and public assets.
// They are served when PUBLIC_DIR or ENTRY_FILE are not configured.
package web

import (
	"embed"
	"io/fs"
)

// EntryName is the embedded entry file
const EntryName = "index.html"

//go:embed index.html public
var content embed.FS

// Entry returns the file system holding EntryName
func Entry() fs.FS {
	return content
}

// Public returns the embedded public directory rooted at its top
func Public() fs.FS {
	sub, err := fs.Sub(content, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
