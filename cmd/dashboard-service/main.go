package main

import (
	"context"

	"github.com/klwxsrx/store-dashboard/internal/dashboard"
	"github.com/klwxsrx/store-dashboard/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/store-dashboard/pkg/cmd"
	"github.com/klwxsrx/store-dashboard/pkg/worker"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	container := dashboard.NewDependencyContainer(infra)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	jobs := []worker.ContextJob{
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	}
	jobs = append(jobs, container.BackgroundJobs()...)

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(), jobs...)
}
