// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chainbot/internal/command"
	"chainbot/internal/command/core"
	"chainbot/internal/config"
	"chainbot/internal/discord"
	"chainbot/internal/status"
	"chainbot/internal/storage"
	"chainbot/internal/version"
	"chainbot/pkg/jobmgr"
)

func main() {
	log.Printf("[INFO] Starting %s...", version.String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	registry := command.NewRegistry()
	core.RegisterAll(registry, command.WithInvocationLog())

	bot, err := discord.NewBot(cfg, store, registry)
	if err != nil {
		log.Fatal(err)
	}

	jobs := jobmgr.NewManager(func(msg string) {
		log.Println("[INFO] job:", msg)
	})
	defer jobs.StopAll()

	if err := jobs.StartAsync("status", func(ctx context.Context) error {
		return status.NewServer(cfg.StatusAddr, registry, store).Run(ctx)
	}); err != nil {
		log.Println("[WARN] Status server not started:", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
