package cli

import (
	"context"
	"fmt"

	"github.com/vendapp/repvendas/internal/client/iocli"
	"github.com/vendapp/repvendas/internal/client/storage"
)

// RunPending lists the orders waiting for synchronization, oldest first.
func RunPending(ctx context.Context, io iocli.IO, queue storage.OrderQueue) error {
	orders, err := queue.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending orders: %w", err)
	}

	if len(orders) == 0 {
		io.Println("No pending orders.")
		return nil
	}

	io.Printf("%d pending order(s):\n", len(orders))
	io.Println("")
	for _, order := range orders {
		printQueuedOrder(io, order)
		io.Println("")
	}
	io.Println("Run 'repvendas sync' to submit them when online.")

	return nil
}
