package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func StartServer(addr string, webPath string) error {
	r := mux.NewRouter()
	r.HandleFunc("/api/convert", HandlerConvert).Methods("POST")
	r.HandleFunc("/api/inspect", HandlerInspect).Methods("POST")
	r.HandleFunc("/api/presets", HandlerPresets).Methods("GET")
	r.HandleFunc("/ws/status", HandlerStatusWs)

	if webPath != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(webPath)))
	}

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
