package main

import (
	"context"
	"log"

	"detailops-be/internal/bootstrap"
	"detailops-be/internal/config"
	"detailops-be/internal/server"
	"detailops-be/internal/tracer"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	container := bootstrap.NewContainer(cfg)

	// The feed consumer bridges recorded activities to connected dashboards.
	go func() {
		if err := container.FeedService.Consume(context.Background()); err != nil {
			log.Printf("Feed consumer error: %v", err)
		}
	}()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
