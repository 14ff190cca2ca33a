// Command shredderd is the long-running pipeline daemon: it watches the
// storage root for arriving blobs, drives them through routing, recognition
// and shredding, and serves the ShredderService gRPC surface.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/formshred/formshred/gen/proto/shredder/v1"
	"github.com/formshred/formshred/internal/async"
	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/export"
	"github.com/formshred/formshred/internal/ingest"
	"github.com/formshred/formshred/internal/pipeline"
	"github.com/formshred/formshred/internal/recognizer"
	repo "github.com/formshred/formshred/internal/repository"
	svc "github.com/formshred/formshred/internal/server"
	"github.com/formshred/formshred/internal/shred"
	"github.com/formshred/formshred/internal/storage"
)

func main() {
	logger := common.NewLogger()
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.OpenFromDSN(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if pool != nil {
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}

	store, err := storage.NewFSStore(cfg.Storage.Root, logger)
	if err != nil {
		logger.Error("failed to open blob store", "root", cfg.Storage.Root, "error", err)
		os.Exit(1)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	modelsRepo := repo.NewModelRepository(entc, logger)

	client := recognizer.NewClient(cfg.Recognizer, nil, logger)
	shredder := shred.NewShredder(shred.DefaultFieldMap(), logger)

	routeStage := pipeline.NewRouteStage(logger, store, modelsRepo, cfg.Storage)
	recognizeStage := pipeline.NewRecognizeStage(logger, store, client, cfg.Storage)
	shredStage := pipeline.NewShredStage(logger, store, shredder, docsRepo, cfg.Storage)
	trainStage := pipeline.NewTrainStage(logger, client, modelsRepo)
	processor := pipeline.NewProcessor(logger, store, cfg.Storage, routeStage, recognizeStage, shredStage)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	arrivals, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Root:        cfg.Storage.Root,
		Storage:     cfg.Storage,
		InitialScan: true,
		Debounce:    500 * time.Millisecond,
	}, logger)
	if err != nil {
		logger.Error("failed to start watcher", "root", cfg.Storage.Root, "error", err)
		os.Exit(1)
	}
	go func() {
		for a := range arrivals {
			_ = queue.Enqueue(ctx, async.Job{
				Container:   a.Container,
				Name:        a.Name,
				SubmittedAt: time.Now().UTC(),
				TraceID:     uuid.New().String(),
			})
		}
	}()
	go func() {
		for err := range watchErrs {
			logger.Error("watcher error", "error", err)
		}
	}()

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	exporter := export.NewService(docsRepo, logger)
	documentService := svc.NewDocumentService(docsRepo, exporter, processor,
		&svc.TrainStageAdapter{Stage: trainStage}, logger)
	v1.RegisterShredderServiceServer(grpcServer, documentService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("shredderd listening", "addr", cfg.Server.GRPCAddr, "storage_root", cfg.Storage.Root)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
