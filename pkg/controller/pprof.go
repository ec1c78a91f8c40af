package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where PprofMux serves the profiles.
const PprofPrefix = "/debug/pprof/"

// PprofMux returns a mux serving net/http/pprof under PprofPrefix. Named
// profiles such as heap or goroutine are served by pprof.Index.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+PprofPrefix, pprof.Index)
	mux.HandleFunc("GET "+PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc("GET "+PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc("GET "+PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc("POST "+PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc("GET "+PprofPrefix+"trace", pprof.Trace)

	return mux
}
