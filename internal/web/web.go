// Package web embeds the browser UI for the parts inventory.
package web

import (
	"embed"
	"net/http"
	"strings"
)

//go:embed index.html
var siteFS embed.FS

// Handler returns an http.Handler serving the embedded UI. Any path that does
// not match an embedded file falls back to index.html.
func Handler() http.Handler {
	fileServer := http.FileServer(http.FS(siteFS))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		// index.html goes through the rewrite below: http.FileServer
		// 301-redirects any path ending in /index.html to ./
		if name != "" && !strings.HasSuffix(name, "index.html") {
			if f, err := siteFS.Open(name); err == nil {
				f.Close()
				fileServer.ServeHTTP(w, r)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
