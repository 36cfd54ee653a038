package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns an http.ServeMux exposing the net/http/pprof handlers under
// their canonical /debug/pprof/ paths, so it can be mounted on the main server
// without prefix stripping. Index also serves the named runtime profiles
// (heap, goroutine, ...).
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}
