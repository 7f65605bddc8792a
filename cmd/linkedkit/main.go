package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/linkedkit/linkedkit/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCommand()

	demoCmd := cmd.NewDemoCommand()
	rootCmd.AddCommand(demoCmd)

	soakCmd := cmd.NewSoakCommand()
	rootCmd.AddCommand(soakCmd)

	versionCmd := cmd.NewVersionCommand()
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
