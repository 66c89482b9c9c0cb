package cli

import (
	"context"
	"time"

	"github.com/vendapp/repvendas/internal/client/api"
	"github.com/vendapp/repvendas/internal/client/iocli"
	"github.com/vendapp/repvendas/internal/client/netmon"
	syncService "github.com/vendapp/repvendas/internal/client/sync"
)

// RunWatch probes server reachability on a fixed interval and feeds the
// connectivity monitor, so the sync service fires as soon as connectivity
// comes back. Blocks until the context is cancelled.
func RunWatch(ctx context.Context, io iocli.IO, apiClient api.ClientAPI, monitor *netmon.Monitor, svc syncService.Service, interval time.Duration) error {
	stop := svc.Start(ctx, monitor)
	defer stop()

	unsubscribe := monitor.Subscribe(func(event netmon.Event) {
		io.Printf("Connectivity: %s\n", event)
	})
	defer unsubscribe()

	if monitor.Online() {
		io.Println("Watching connectivity (currently online)")
	} else {
		io.Println("Watching connectivity (currently offline)")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			monitor.Set(apiClient.Reachable(ctx))
		}
	}
}
