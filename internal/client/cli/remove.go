package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vendapp/repvendas/internal/client/iocli"
	"github.com/vendapp/repvendas/internal/client/storage"
)

// RunRemove deletes one queued order that the user decided to abandon.
func RunRemove(ctx context.Context, io iocli.IO, queue storage.OrderQueue, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing local id. Usage: repvendas remove <local-id>")
	}

	localID, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid local id %q", args[0])
	}

	if err := queue.Remove(ctx, localID); err != nil {
		return fmt.Errorf("failed to remove order: %w", err)
	}

	io.Printf("Order #%d removed from the local queue.\n", localID)
	return nil
}

// RunClear deletes every queued order after an explicit confirmation.
func RunClear(ctx context.Context, io iocli.IO, queue storage.OrderQueue) error {
	count, err := queue.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending orders: %w", err)
	}

	if count == 0 {
		io.Println("No pending orders to clear.")
		return nil
	}

	answer, err := io.ReadInput(fmt.Sprintf("Delete all %d pending order(s)? [y/N] ", count))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if answer != "y" && answer != "Y" {
		io.Println("Aborted.")
		return nil
	}

	if err := queue.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}

	io.Printf("%d pending order(s) deleted.\n", count)
	return nil
}
