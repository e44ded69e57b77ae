package view

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// StylesheetPath is where Page expects the embedded stylesheet to be served.
const StylesheetPath = "/static/styles.css"

// Static returns the embedded assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}
