package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/net/context"
)

type httpConfigService struct {
	srv     *http.Server
	handler *apiHandler
}

// newRouter puts the api behind basic auth
func newRouter(handler *apiHandler) *mux.Router {
	r := mux.NewRouter()

	// auth middleware
	r.Use(handler.BasicAuth)
	// api server
	r.HandleFunc("/api/status", handler.apiStatus).Methods("GET")
	r.HandleFunc("/api/colors", handler.apiColors).Methods("POST")
	r.HandleFunc("/api/game", handler.apiGame).Methods("POST")
	r.HandleFunc("/api/counter", handler.apiCounter).Methods("POST")
	r.HandleFunc("/api/debug", handler.apiDebug).Methods("POST")
	r.PathPrefix("/api/").HandlerFunc(handler.apiError)

	return r
}

func (h *httpConfigService) launch(handler *apiHandler, addr string) {
	h.handler = handler
	h.srv = &http.Server{
		Addr:         addr,
		Handler:      newRouter(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// add to the wg
	wg.Add(1)

	// launch the server
	go func(srv *http.Server) {
		defer wg.Done()
		log.Println("starting config service http server")
		err := srv.ListenAndServe()
		log.Print(err)
		log.Print("Exiting config service")
	}(h.srv)
}

func (h *httpConfigService) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	h.srv.Shutdown(ctx)
}
