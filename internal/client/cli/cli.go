// Package cli implements the repvendas commands. Each command is a RunX
// function taking its collaborators explicitly, so tests drive them with
// mocks.
package cli

import (
	"time"

	"github.com/vendapp/repvendas/internal/client/iocli"
	"github.com/vendapp/repvendas/internal/models"
)

// PrintUsage prints the command overview.
func PrintUsage(io iocli.IO) {
	io.Println("repvendas - offline-capable order entry client")
	io.Println("")
	io.Println("Usage: repvendas [flags] <command> [args]")
	io.Println("")
	io.Println("Commands:")
	io.Println("  capture <file.json>   Submit an order draft (queues it when offline)")
	io.Println("  pending               List orders waiting for synchronization")
	io.Println("  sync                  Submit queued orders to the server")
	io.Println("  remove <local-id>     Delete one queued order")
	io.Println("  clear                 Delete all queued orders")
	io.Println("  status                Show connectivity and pending count")
	io.Println("  orders                List orders already on the server")
	io.Println("  catalog refresh       Refresh the local product cache")
	io.Println("  catalog list          List cached products")
	io.Println("  watch                 Keep syncing as connectivity changes")
	io.Println("")
	io.Println("Flags:")
	io.Println("  -server <url>         Server URL")
	io.Println("  -db <path>            Path to the local database")
	io.Println("  -version              Show version information")
}

// printQueuedOrder renders one pending order.
func printQueuedOrder(io iocli.IO, order *models.QueuedOrder) {
	io.Printf("#%d  %s\n", order.LocalID, order.Client.RazaoSocial)
	io.Printf("    CNPJ:     %s\n", order.Client.CNPJ)
	io.Printf("    Captured: %s\n", order.CapturedAt.Local().Format(time.DateTime))
	io.Printf("    Items:    %d\n", len(order.Items))
	io.Printf("    Total:    %.2f\n", order.TotalValue())
}
