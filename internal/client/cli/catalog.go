package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/vendapp/repvendas/internal/client/capture"
	"github.com/vendapp/repvendas/internal/client/iocli"
	"github.com/vendapp/repvendas/internal/client/storage"
)

// RunCatalog handles the "catalog refresh" and "catalog list" subcommands.
func RunCatalog(ctx context.Context, io iocli.IO, svc *capture.Service, catalog storage.CatalogCache, args []string) error {
	if len(args) == 0 {
		io.Println("Usage: repvendas catalog <refresh|list>")
		return nil
	}

	switch args[0] {
	case "refresh":
		return runCatalogRefresh(ctx, io, svc)
	case "list":
		return runCatalogList(ctx, io, catalog)
	default:
		return fmt.Errorf("unknown catalog subcommand: %s", args[0])
	}
}

func runCatalogRefresh(ctx context.Context, io iocli.IO, svc *capture.Service) error {
	count, err := svc.RefreshCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh catalog: %w", err)
	}

	io.Printf("Catalog updated: %d products\n", count)
	return nil
}

func runCatalogList(ctx context.Context, io iocli.IO, catalog storage.CatalogCache) error {
	products, err := catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	if len(products) == 0 {
		io.Println("Catalog is empty. Run 'repvendas catalog refresh' while online.")
		return nil
	}

	io.Printf("Products (%d):\n", len(products))
	for _, p := range products {
		sizes := ""
		if len(p.Sizes) > 0 {
			sizes = " [" + strings.Join(p.Sizes, " ") + "]"
		}
		io.Printf("  %s  %s  R$ %.2f%s\n", p.Code, p.Description, p.UnitValue, sizes)
	}

	return nil
}
