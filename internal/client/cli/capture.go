package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vendapp/repvendas/internal/client/capture"
	"github.com/vendapp/repvendas/internal/client/iocli"
	"github.com/vendapp/repvendas/internal/models"
)

// RunCapture submits an order draft read from a JSON file. Online, the
// order goes straight to the server; offline, it is queued locally.
func RunCapture(ctx context.Context, io iocli.IO, svc *capture.Service, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing draft file. Usage: repvendas capture <file.json>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read draft file: %w", err)
	}

	var order models.QueuedOrder
	if err := json.Unmarshal(data, &order); err != nil {
		return fmt.Errorf("failed to parse draft file: %w", err)
	}

	result, err := svc.Submit(ctx, &order)
	if err != nil {
		return err
	}

	if result.Queued {
		io.Printf("Offline: order saved locally as #%d.\n", result.LocalID)
		io.Println("It will be submitted on the next synchronization.")
		return nil
	}

	io.Printf("Order created on server: %s\n", result.ServerOrder.ID)
	return nil
}
