package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kariqs/storefront-api/initializers"
	"github.com/Kariqs/storefront-api/routes"
	"github.com/Kariqs/storefront-api/tasks"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	initializers.ConnectToCache()
}

func main() {
	env := initializers.Env
	if env.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	gin.SetMode(env.GinMode)

	hub := tasks.NewHub()
	notifier := tasks.NewOrderNotifier(initializers.DB, tasks.NotifierConfig{
		Delay:      env.NotifyDelay,
		WebhookURL: env.NotifyWebhook,
		Mailer: utils.Mailer{
			From:     env.FromEmail,
			Password: env.FromEmailPassword,
			Host:     env.FromEmailSMTP,
			Address:  env.SMTPAddress,
		},
		Hub: hub,
	})
	queue := tasks.NewQueue(env.NotifyWorkers, env.NotifyQueueSize, notifier.Handle)
	queue.Start()

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     env.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	err := routes.Setup(server, routes.Dependencies{
		DB:             initializers.DB,
		Cache:          initializers.Cache,
		Tokens:         utils.NewTokenIssuer(env.JWTSecret),
		Notifier:       queue,
		Hub:            hub,
		AllowedOrigins: env.AllowedOrigins,
	})
	if err != nil {
		log.Fatal("Failed to set up routes: ", err)
	}

	httpServer := &http.Server{
		Addr:         ":" + env.Port,
		Handler:      server,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", env.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), env.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if err := queue.Shutdown(ctx); err != nil {
		log.Printf("Notification queue did not drain: %v", err)
	}

	log.Println("Server shutdown complete")
}
