package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dallionking/cashout/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
