// Package server wires the HTTP router, the database handle and the
// listening socket together.
package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"devreg/pkg/server/middleware"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Logger zerolog.Logger
	srv    *http.Server
}

func NewServer(db *gorm.DB, log zerolog.Logger, host, port string) *Server {
	router := mux.NewRouter()
	router.Use(middleware.RequestID(log))

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router: router,
		DB:     db,
		Logger: log,
		srv:    srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
