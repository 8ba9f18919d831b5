package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpc_adapter "github.com/JoeShih716/go-economy-ledger/internal/app/core/adapter/in/grpc"
	cache_adapter "github.com/JoeShih716/go-economy-ledger/internal/app/core/adapter/out/cache"
	event_adapter "github.com/JoeShih716/go-economy-ledger/internal/app/core/adapter/out/event"
	memory_adapter "github.com/JoeShih716/go-economy-ledger/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-economy-ledger/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/adapter/out/pebblestore"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/config"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-economy-ledger/pkg/logger"
	"github.com/JoeShih716/go-economy-ledger/pkg/mysql"
	"github.com/JoeShih716/go-economy-ledger/pkg/wal"
	pb "github.com/JoeShih716/go-economy-ledger/proto"
)

const defaultConfigPath = "config/config.yaml"

func main() {
	// 1. 載入設定
	path := defaultConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	// 2. 初始化儲存層 (Driven Adapter)
	store, cleanup, err := buildStore(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to init account store", zap.Error(err))
	}
	defer cleanup()
	zapLogger.Info("account store ready", zap.String("backend", cfg.Store.Backend))

	// 3. 初始化快取層
	accountCache := buildCache(cfg, zapLogger)

	// 4. 初始化事件發布
	events, eventsCleanup := buildEvents(cfg, zapLogger)
	defer eventsCleanup()

	// 5. 初始化 UseCase
	// reload 每次重新讀設定檔，換參數不用重啟
	reload := func() (usecase.Settings, time.Duration, error) {
		fresh, err := config.Load(path)
		if err != nil {
			return usecase.Settings{}, 0, err
		}
		return usecase.SettingsFromConfig(fresh.Economy), fresh.Cache.TTL(), nil
	}
	economy := usecase.NewEconomy(store, accountCache, events, usecase.SettingsFromConfig(cfg.Economy), reload, zapLogger)
	transfer := usecase.NewTransferCoordinator(economy, zapLogger)

	if err := economy.Start(context.Background()); err != nil {
		zapLogger.Fatal("failed to start economy service", zap.Error(err))
	}
	defer economy.Stop()

	// 6. 初始化 gRPC Adapter (Driving Adapter)
	grpcServer := grpc_adapter.NewGrpcServer(economy, transfer, zapLogger)

	lis, err := net.Listen("tcp", cfg.Server.GrpcAddr)
	if err != nil {
		zapLogger.Fatal("failed to listen", zap.String("addr", cfg.Server.GrpcAddr), zap.Error(err))
	}

	s := grpc.NewServer(
		grpc.UnaryInterceptor(grpc_adapter.RateLimitInterceptor(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)),
	)
	pb.RegisterEconomyServiceServer(s, grpcServer)
	reflection.Register(s) // 方便 gRPC Client 測試 (如 Postman/BloomRPC)

	// Graceful Shutdown
	go func() {
		zapLogger.Info("starting gRPC server", zap.String("addr", cfg.Server.GrpcAddr))
		if err := s.Serve(lis); err != nil {
			zapLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server")

	s.GracefulStop()
	zapLogger.Info("server exited")
}

// buildStore 依設定建立儲存層，回傳的 cleanup 在程式結束時呼叫
func buildStore(cfg config.Config, zapLogger *zap.Logger) (usecase.AccountStore, func(), error) {
	noop := func() {}
	switch cfg.Store.Backend {
	case config.StoreBackendMySQL:
		client, err := mysql.NewClient(cfg.Store.MySQL, zapLogger)
		if err != nil {
			return nil, noop, err
		}
		store, err := mysql_adapter.NewAccountStore(client)
		if err != nil {
			client.Close()
			return nil, noop, err
		}
		return store, func() { client.Close() }, nil

	case config.StoreBackendMemory:
		var journal *wal.WAL
		if cfg.Store.WALPath != "" {
			var err error
			journal, err = wal.Open(cfg.Store.WALPath)
			if err != nil {
				return nil, noop, err
			}
		}
		store, err := memory_adapter.NewAccountStore(journal)
		if err != nil {
			if journal != nil {
				journal.Close()
			}
			return nil, noop, err
		}
		cleanup := noop
		if journal != nil {
			cleanup = func() { journal.Close() }
		}
		return store, cleanup, nil

	case config.StoreBackendPebble:
		store, err := pebblestore.Open(cfg.Store.Pebble.Dir)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { store.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}
}

// buildCache 依設定建立快取層，停用時回傳 no-op 實作
func buildCache(cfg config.Config, zapLogger *zap.Logger) usecase.AccountCache {
	if !cfg.Cache.Enabled {
		zapLogger.Info("account cache disabled")
		return cache_adapter.NewDisabled()
	}
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		zapLogger.Info("using redis cache", zap.String("addr", cfg.Cache.Redis.Addr))
		return cache_adapter.NewRedis(rdb, cfg.Cache.Redis.KeyPrefix, cfg.Cache.TTL(), zapLogger)
	default:
		return cache_adapter.NewTTL(cfg.Cache.TTL())
	}
}

// buildEvents 依設定建立事件發布，"none" 時回傳行程內廣播器
func buildEvents(cfg config.Config, zapLogger *zap.Logger) (usecase.EventPublisher, func()) {
	if cfg.Events.Backend == "kafka" {
		publisher := event_adapter.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic, zapLogger)
		zapLogger.Info("using kafka event publisher",
			zap.Strings("brokers", cfg.Events.Brokers),
			zap.String("topic", cfg.Events.Topic),
		)
		return publisher, func() { publisher.Close() }
	}
	return event_adapter.NewBroadcaster(zapLogger), func() {}
}
