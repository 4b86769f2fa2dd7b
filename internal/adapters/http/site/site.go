// Package site serves the embedded browser page for scoring transcripts.
package site

import (
	"context"
	"errors"
	"net/http"
)

// ErrNilMux is the panic value when Register is given no mux.
var ErrNilMux = errors.New("site: mux is nil")

// Register serves the embedded page at the root of mux. Paths not found in
// the embedded files are 404s.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic(ErrNilMux)
	}
	mux.Handle("/", http.FileServer(FS()))
}
