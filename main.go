package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"littlelemon/configs"
	"littlelemon/events"
	"littlelemon/logger"
	"littlelemon/routes"
	"littlelemon/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New("littlelemon-api", cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("startup", "", "server stopped", err)
		os.Exit(1)
	}
}

func run(cfg *configs.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	db, err := configs.Open(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return err
	}
	if err := configs.SetupDatabase(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := configs.SeedGroups(db); err != nil {
		return err
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	// Order events: websocket เสมอ, rabbitmq ถ้าตั้ง RABBITMQ_URL
	hub := ws.NewOrderHub(log)
	go hub.Run(ctx)
	pubs := events.Multi{hub}
	if cfg.RabbitMQURL != "" {
		amqpPub, err := events.DialAMQP(cfg.RabbitMQURL, 5)
		if err != nil {
			return err
		}
		defer amqpPub.Close()
		pubs = append(pubs, amqpPub)
		log.Info("startup", "", "rabbitmq publisher enabled")
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, db, cfg, log, pubs, hub)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("startup", "", "server running at "+srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutdown", "", "shutting down")
	return srv.Shutdown(shutdownCtx)
}
