package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ShapeBoard/internal/api"
	"ShapeBoard/internal/config"
	"ShapeBoard/internal/state"
	"ShapeBoard/internal/surface"
	"ShapeBoard/internal/ui"

	"github.com/gogpu/gg"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cfg := config.Load()
	if cfg.Debug {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	session := state.NewSession(cfg.ToolConfig())
	board := surface.NewDispatcher(surface.New(session))
	defer board.Close()

	if cfg.Headless {
		runHeadless(cfg, board)
		return
	}

	var server *api.Server
	if cfg.APIEnabled() {
		server = api.New(board, cfg)
		go func() {
			if err := server.Listen(":" + cfg.APIPort); err != nil {
				log.Printf("[API] Server stopped: %v", err)
			}
		}()
		log.Printf("Control API at %s", api.LocalURL(cfg.APIPort))
	}

	log.Println("Starting drawing window")
	ui.RunApp(cfg, board)

	if server != nil {
		shutdown(server)
	}
}

func runHeadless(cfg *config.Config, board *surface.Dispatcher) {
	log.Println("Starting HEADLESS")
	server := api.New(board, cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		shutdown(server)
	}()

	// Exit arrives on the dispatcher goroutine while the /exit request is
	// still in flight, so the shutdown has to happen elsewhere.
	_ = board.Do(context.Background(), func(sf *surface.Surface) {
		sf.OnExit = func() { go shutdown(server) }
	})

	log.Printf("Control API at %s", api.LocalURL(cfg.APIPort))
	if err := server.Listen(":" + cfg.APIPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func shutdown(server *api.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[API] Shutdown error: %v", err)
	}
}
