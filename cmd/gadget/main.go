package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"iss-display-gadget/internal/api"
	"iss-display-gadget/internal/config"
	"iss-display-gadget/internal/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It loads configuration, wires adapters behind ports and runs the gadget
// loop alongside the optional HTTP API.
func main() {
	tokenFor := flag.String("token", "", "print an API token for this subject and exit")
	tokenTTL := flag.Duration("token-ttl", 30*24*time.Hour, "lifetime of a token printed by -token")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	path := config.Get("SECRETS_FILE", config.DefaultPath)
	cfg, bootErr := config.Load(path)
	if bootErr != nil {
		log.Printf("config load failed, starting in setup mode: %v", bootErr)
		bootErr = services.Fail(services.FailureConfig, "load config", bootErr)
		cfg = config.Defaults()
	}

	if *tokenFor != "" {
		token, err := api.IssueToken(cfg.API.JWTSecret, *tokenFor, *tokenTTL)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(token)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := build(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.gadget.Run(gctx, bootErr)
	})

	if app.server != nil {
		g.Go(func() error {
			log.Printf("API listening addr=%s", app.server.Addr)
			if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("api server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return app.server.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("shutdown: %v", err)
		app.Close()
		os.Exit(1)
	}
	log.Println("Gadget stopped.")
}
