package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"klu-checkout/config"
	"klu-checkout/handlers"
	"klu-checkout/middleware"
	"klu-checkout/services/transaction"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		// Only log slow requests and errors.
		elapsed := time.Since(start)
		if elapsed > 500*time.Millisecond || wrapper.status >= 400 {
			log.Printf(
				"%s %s %s %d %v",
				r.Method,
				r.RequestURI,
				r.RemoteAddr,
				wrapper.status,
				elapsed,
			)
		}
	})
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds | log.LUTC)
	log.Printf("Server starting with %d CPUs available", runtime.NumCPU())

	cfg := config.Load()
	log.Printf("Configuration loaded, backend API: %s", cfg.Backend.APIURL)

	txClient := transaction.NewClient(cfg.Backend.APIURL)

	relay := handlers.NewTransactionRelay(cfg.Backend.APIURL)
	pages, err := handlers.NewPageHandler(txClient)
	if err != nil {
		log.Fatalf("Failed to initialize page handler: %v", err)
	}

	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(loggingMiddleware)

	api := router.PathPrefix("/api").Subrouter()

	// Rate limiting on the relay, when Redis is configured. Without it the
	// relay still works, just unthrottled.
	var rateLimiter *middleware.RateLimiter
	if cfg.Redis.URL != "" {
		rateLimiter, err = middleware.NewRateLimiter(cfg.Redis.URL)
		if err != nil {
			log.Printf("Warning: rate limiting disabled: %v", err)
		} else {
			api.Use(rateLimiter.Middleware())
			defer rateLimiter.Close()
			log.Println("Rate limiting enabled on /api")
		}
	}

	// Relay endpoints dispatch on method internally so unsupported methods get
	// the {detail} 405 body.
	api.HandleFunc("/transactions", relay.HandleCollection)
	api.HandleFunc("/transactions/{id}", relay.HandleItem)

	startTime := time.Now()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		health := struct {
			Status    string `json:"status"`
			Time      string `json:"time"`
			Uptime    string `json:"uptime"`
			GoVersion string `json:"go_version"`
		}{
			Status:    "ok",
			Time:      time.Now().Format(time.RFC3339),
			Uptime:    fmt.Sprintf("%v", time.Since(startTime)),
			GoVersion: runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	}).Methods("GET")

	// Checkout pages.
	router.HandleFunc("/", pages.ShowPaymentForm).Methods("GET")
	router.HandleFunc("/", pages.SubmitPayment).Methods("POST")
	router.HandleFunc("/confirmation/{id}", pages.ShowConfirmation).Methods("GET")

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stop
	log.Println("Shutdown signal received, gracefully shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
