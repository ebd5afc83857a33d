package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Service 可独立启停的子服务
type Service interface {
	Name() string
	Start() error
	Stop(ctx context.Context) error
}

// Runner 按顺序启动一组子服务, 并在收到信号或任一服务出错时整体退出
type Runner struct {
	services []Service
	logger   *zap.SugaredLogger
}

func NewRunner(logger *zap.SugaredLogger, services ...Service) *Runner {
	return &Runner{services: services, logger: logger}
}

// Run 阻塞运行, 返回导致退出的错误
func (r *Runner) Run(signals []os.Signal, shutdownTimeout time.Duration) error {
	if len(r.services) == 0 {
		return fmt.Errorf("no services to run")
	}
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	errCh := make(chan error, len(r.services))
	for _, svc := range r.services {
		svc := svc
		r.logger.Infow("service_starting", "service", svc.Name())
		go func() {
			if err := svc.Start(); err != nil {
				errCh <- fmt.Errorf("%s: %w", svc.Name(), err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, signals...)

	var runErr error
	select {
	case sig := <-quit:
		r.logger.Infow("shutdown_signal_received", "signal", sig.String())
	case err := <-errCh:
		r.logger.Errorw("service_failed", "error", err)
		runErr = err
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, svc := range r.services {
		if err := svc.Stop(ctx); err != nil {
			r.logger.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
			if runErr == nil {
				runErr = err
			}
		} else {
			r.logger.Infow("service_stopped", "service", svc.Name())
		}
	}
	return runErr
}
