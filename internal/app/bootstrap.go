package app

import (
	"fmt"

	"github.com/storefront-next/internal/provider"
	"github.com/storefront-next/internal/router"
	"github.com/storefront-next/internal/worker"
)

// BuildRunner 按运行模式组装子服务
func BuildRunner(opts Options) (*Runner, error) {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return nil, fmt.Errorf("config is required")
	}

	container := provider.NewContainer(opts.Config)

	var services []Service
	switch opts.Mode {
	case ModeAPI:
		services = append(services, newAPIService(opts, container))
	case ModeWorker:
		svc, err := newWorkerService(opts, container)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	case ModeAll:
		services = append(services, newAPIService(opts, container))
		if opts.Config.Queue.Enabled {
			svc, err := newWorkerService(opts, container)
			if err != nil {
				return nil, err
			}
			services = append(services, svc)
		} else {
			opts.Logger.Infow("worker_disabled", "reason", "queue not enabled")
		}
	default:
		return nil, fmt.Errorf("unknown mode: %s", opts.Mode)
	}

	return NewRunner(opts.Logger, services...), nil
}

func newAPIService(opts Options, container *provider.Container) Service {
	engine := router.SetupRouter(opts.Config, container)
	addr := fmt.Sprintf("%s:%s", opts.Config.Server.Host, opts.Config.Server.Port)
	return NewHTTPService(addr, engine)
}

func newWorkerService(opts Options, container *provider.Container) (Service, error) {
	consumer := worker.NewConsumer(container)
	return worker.NewService(&opts.Config.Queue, consumer)
}

// Run 组装并阻塞运行
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	runner, err := BuildRunner(opts)
	if err != nil {
		return err
	}
	return runner.Run(opts.Signals, opts.ShutdownTimeout)
}
