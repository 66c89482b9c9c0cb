package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendapp/repvendas/internal/client/iocli"
	syncService "github.com/vendapp/repvendas/internal/client/sync"
)

// RunSync drains the offline queue against the server.
func RunSync(ctx context.Context, io iocli.IO, svc syncService.Service) error {
	io.Println("Synchronizing queued orders...")

	result, err := svc.Run(ctx)
	if err != nil {
		if errors.Is(err, syncService.ErrSyncInProgress) {
			io.Println("A synchronization run is already in progress, skipped.")
			return nil
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	io.Println("")
	io.Printf("Synced: %d\n", result.Synced)
	io.Printf("Failed: %d\n", result.Failed)

	if len(result.Rejections) > 0 {
		io.Println("")
		io.Println("Rejected by server (correct and resubmit):")
		for _, rejection := range result.Rejections {
			io.Printf("  #%d (%s): %s\n", rejection.LocalID, rejection.ClientCNPJ, rejection.Detail)
		}
	}

	return nil
}
