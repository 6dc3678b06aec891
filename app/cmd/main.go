package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dppify/app/keepalive"
	"dppify/app/server"
	"dppify/logger"

	"github.com/joho/godotenv"
)

func init() {
	loadEnvVariables()
}

func main() {
	if err := logger.Initialize(os.Getenv("APP_ENV")); err != nil {
		log.Fatal("Error initializing logger")
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Hosted platforms idle the process out; the pinger keeps it warm.
	keepalive.New(os.Getenv("RENDER_EXTERNAL_URL"), 30*time.Second).Start(ctx)

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	s := server.NewServer(addr)

	go s.Run()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	<-sigch
	log.Println("Received shutdown signal, shutting down server...")
	s.Stop()
}

func loadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}
