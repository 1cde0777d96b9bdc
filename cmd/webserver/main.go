package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nonono109/snaker/pkg/config"
	"github.com/nonono109/snaker/pkg/game"
	"github.com/nonono109/snaker/pkg/storage"
)

func main() {
	var (
		addr      = flag.String("addr", config.DefaultAddr, "listen address")
		staticDir = flag.String("static", config.DefaultStaticDir, "directory with the browser client")
		dbPath    = flag.String("db", config.DefaultDBPath, "SQLite file for the high score (empty: keep in memory)")
	)
	flag.Parse()

	var store game.HighScoreStore = storage.NewMemory()
	if *dbPath != "" {
		db, err := storage.OpenSQLite(*dbPath, config.HighScoreKey)
		if err != nil {
			log.Printf("High score storage unavailable, using memory: %v", err)
		} else {
			defer db.Close()
			store = db
		}
	}

	gs := NewGameServer(store)

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(*staticDir)))
	mux.HandleFunc("/ws", gs.HandleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{
		Addr:         *addr,
		Handler:      loggingMiddleware(mux),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("🚀 Snake Game Web Server starting on http://localhost%s", *addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
