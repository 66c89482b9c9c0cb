package cli

import (
	"context"
	"fmt"

	"github.com/vendapp/repvendas/internal/client/api"
	"github.com/vendapp/repvendas/internal/client/iocli"
)

// RunOrders lists orders already submitted to the server.
func RunOrders(ctx context.Context, io iocli.IO, apiClient api.ClientAPI) error {
	orders, err := apiClient.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	if len(orders) == 0 {
		io.Println("No orders found")
		return nil
	}

	io.Printf("Orders (%d):\n", len(orders))
	for _, o := range orders {
		io.Printf("  %s  %s  %s  R$ %.2f  [%s]\n",
			o.CreatedAt.Format("2006-01-02 15:04"),
			o.ClientRazaoSocial,
			o.ClientCNPJ,
			o.TotalValue,
			o.Status,
		)
	}

	return nil
}
