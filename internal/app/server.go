package app

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"ponyexpress/backend/internal/handler"
)

type Server struct {
	router *mux.Router
}

func NewServer(userHandler *handler.UserHandler, chatHandler *handler.ChatHandler, authHandler *handler.AuthHandler) *Server {
	router := mux.NewRouter()

	router.HandleFunc("/ping", handler.Ping).Methods("GET", "OPTIONS")

	// Routes
	userHandler.RegisterRoutes(router)
	chatHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)

	swaggerHandler := httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	)

	// mux matches in registration order, so doc.json must come before the
	// prefix route or the UI handler swallows it
	router.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.json")
	})

	router.PathPrefix("/swagger/").Handler(swaggerHandler)

	return &Server{router: router}
}

// Handler wraps the router with CORS, access logging and request ids.
func (s *Server) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
	)

	return cors(requestID(handlers.LoggingHandler(os.Stdout, s.router)))
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) Run(port string) {
	srv := &http.Server{
		Handler:      s.Handler(),
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(srv.ListenAndServe())
}
