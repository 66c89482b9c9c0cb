package cli

import (
	"context"
	"fmt"

	"github.com/vendapp/repvendas/internal/client/iocli"
	"github.com/vendapp/repvendas/internal/client/netmon"
	syncService "github.com/vendapp/repvendas/internal/client/sync"
)

// RunStatus shows connectivity and the pending order count.
func RunStatus(ctx context.Context, io iocli.IO, monitor *netmon.Monitor, svc syncService.Service) error {
	if monitor.Online() {
		io.Println("Connectivity: online")
	} else {
		io.Println("Connectivity: offline")
	}

	count, err := svc.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending orders: %w", err)
	}

	io.Printf("Pending orders: %d\n", count)
	if count > 0 && monitor.Online() {
		io.Println("Run 'repvendas sync' to submit them.")
	}

	return nil
}
