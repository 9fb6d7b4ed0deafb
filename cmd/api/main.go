package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/xiebiao/bookapi/internal/infrastructure/config"
	"github.com/xiebiao/bookapi/pkg/logger"
	"github.com/xiebiao/bookapi/pkg/metrics"
	"github.com/xiebiao/bookapi/pkg/tracing"
)

// @title        Book API
// @version      1.0
// @description  In-memory book collection with CRUD endpoints.
// @license.name MIT
// @BasePath     /

// main 主程序入口
// 启动流程：配置 → 日志 → 指标 → 链路追踪 → Wire组装 → HTTP服务 → 优雅关闭
func main() {
	// 1. 加载配置（BOOKAPI_CONFIG可指定配置文件）
	cfg, err := config.Load(os.Getenv(config.EnvConfigPath))
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	closeLog, err := logger.SetDefault(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		slog.Error("服务异常退出", "error", err)
		_ = closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	// 3. 指标
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	// 4. 链路追踪（默认关闭，使用全局no-op Provider）
	if cfg.Tracing.Enabled {
		shutdownTracer, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				slog.Warn("关闭链路追踪失败", "error", err)
			}
		}()
		slog.Info("链路追踪已启用", "endpoint", cfg.Tracing.Endpoint)
	}

	// 5. 依赖注入（wire_gen.go）
	engine, err := InitializeApp(cfg)
	if err != nil {
		return err
	}

	// 6. 启动HTTP服务
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("服务启动成功",
			"addr", srv.Addr,
			"mode", cfg.Server.Mode,
			"docs", cfg.Docs.Enabled,
			"metrics", cfg.Metrics.Enabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 7. 优雅关闭
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("正在优雅关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("HTTP服务器已关闭")
	return nil
}
