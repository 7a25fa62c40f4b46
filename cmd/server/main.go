/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the tuition tracker server. Handles configuration,
  dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and parse command-line flags
  2. Open the document store (SQLite by default, Redis when -redis is set)
  3. Build the study-plan catalog (built-in, or from -catalog JSON)
  4. Create the API handler and load the owner's document
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port      HTTP server port (default: 8080)
  -db        SQLite database path (default: tuition.db, ":memory:" works)
  -redis     Redis address (e.g. localhost:6379); overrides -db when set
  -owner     Owner identity the document is stored under
  -catalog   Path to a JSON plan catalog; omit for the built-in plans
  -debounce  Save debounce window (default: 2s)

Flags fall back to TUITION_PORT, TUITION_DB, TUITION_REDIS, TUITION_OWNER,
TUITION_CATALOG and TUITION_DEBOUNCE from the environment or a .env file.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Flush the pending document save
  4. Close the store and exit

EXAMPLES:
  # Run with the built-in catalog and a local file database
  ./server -db="./data/tuition.db" -owner="escuela@example.com"

  # Run against a shared Redis instance
  ./server -redis="localhost:6379" -owner="escuela@example.com"

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - docstore/: Document store implementations
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/matricula/tuition-engine/api"
	"github.com/matricula/tuition-engine/docstore"
	redisstore "github.com/matricula/tuition-engine/docstore/redis"
	"github.com/matricula/tuition-engine/docstore/sqlite"
	"github.com/matricula/tuition-engine/factory"
	"github.com/matricula/tuition-engine/tuition"
)

func main() {
	// .env is optional; flags and real environment variables win.
	_ = godotenv.Load()

	port := flag.Int("port", envInt("TUITION_PORT", 8080), "HTTP server port")
	dbPath := flag.String("db", envStr("TUITION_DB", "tuition.db"), "SQLite database path")
	redisAddr := flag.String("redis", envStr("TUITION_REDIS", ""), "Redis address (overrides -db)")
	owner := flag.String("owner", envStr("TUITION_OWNER", "default"), "Owner identity for the document")
	catalogPath := flag.String("catalog", envStr("TUITION_CATALOG", ""), "Plan catalog JSON path (empty = built-in)")
	debounce := flag.Duration("debounce", envDuration("TUITION_DEBOUNCE", 2*time.Second), "Save debounce window")
	flag.Parse()

	// Store
	var (
		store  docstore.Store
		closer io.Closer
	)
	if *redisAddr != "" {
		s, err := redisstore.New(*redisAddr, *owner)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		store, closer = s, s
		log.Printf("Using redis store at %s", *redisAddr)
	} else {
		s, err := sqlite.New(*dbPath, *owner)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		store, closer = s, s
		log.Printf("Using sqlite store at %s", *dbPath)
	}
	defer closer.Close()

	// Catalog
	catalog := tuition.DefaultCatalog()
	if *catalogPath != "" {
		data, err := os.ReadFile(*catalogPath)
		if err != nil {
			log.Fatalf("Failed to read catalog file: %v", err)
		}
		catalog, err = factory.ParseCatalog(data)
		if err != nil {
			log.Fatalf("Invalid catalog file: %v", err)
		}
	}

	writer := docstore.NewDebouncedWriter(store, *debounce, func(err error) {
		log.Printf("Warning: document save failed: %v", err)
	})

	// Initialize handler and pull the owner's document into memory
	handler := api.NewHandler(catalog, store, writer)
	if err := handler.LoadDocument(context.Background()); err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Whatever is still queued must reach the store before we exit.
	if err := writer.Close(ctx); err != nil {
		log.Printf("Warning: final save failed: %v", err)
	}

	log.Println("Server stopped")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
