package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	mappingpb "github.com/laitim2001/ai-document-extraction/gen/proto/mapping/v1"
	"github.com/laitim2001/ai-document-extraction/internal/async"
	"github.com/laitim2001/ai-document-extraction/internal/cache"
	"github.com/laitim2001/ai-document-extraction/internal/common"
	"github.com/laitim2001/ai-document-extraction/internal/export"
	"github.com/laitim2001/ai-document-extraction/internal/format"
	"github.com/laitim2001/ai-document-extraction/internal/issuer"
	"github.com/laitim2001/ai-document-extraction/internal/mapping"
	"github.com/laitim2001/ai-document-extraction/internal/pipeline"
	"github.com/laitim2001/ai-document-extraction/internal/repository"
	"github.com/laitim2001/ai-document-extraction/internal/resolver"
	svc "github.com/laitim2001/ai-document-extraction/internal/server"
	"github.com/laitim2001/ai-document-extraction/internal/transform"
	"github.com/laitim2001/ai-document-extraction/internal/vocab"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	catalogCache := cache.New(cfg.Cache.TTL)
	orgsRepo := repository.NewOrganizationRepository(entc, catalogCache, logger)
	formatsRepo := repository.NewFormatRepository(entc, catalogCache, logger)
	configsRepo := repository.NewConfigRepository(entc, catalogCache, logger)
	termsRepo := repository.NewTermRepository(entc, logger)

	engine := transform.NewEngine()
	issuers := issuer.NewMatcher(orgsRepo, catalogCache, logger)
	formats := format.NewMatcher(formatsRepo, catalogCache, logger)
	res := resolver.NewResolver(configsRepo, catalogCache, logger)
	applier := mapping.NewApplier(engine, logger)
	learner := vocab.NewLearner(termsRepo, logger)
	processor := pipeline.NewProcessor(issuers, formats, res, applier, learner, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	mappingService := svc.NewMappingService(processor, issuers, res, queue, logger)
	mappingpb.RegisterMappingServiceServer(grpcServer, mappingService)
	configService := svc.NewConfigService(configsRepo, engine, logger)
	mappingpb.RegisterConfigServiceServer(grpcServer, configService)
	termService := svc.NewTermService(termsRepo, export.NewService(termsRepo, logger), logger)
	mappingpb.RegisterTermServiceServer(grpcServer, termService)

	reflection.Register(grpcServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Empty string means overall server health
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("mappingd listening", "addr", cfg.Server.GRPCAddr)
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
