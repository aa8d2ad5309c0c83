package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoverse/cmplint/lint"
)

// watchCmd: cmplint watch [dirs...]
var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-lint files as they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}

		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		if err := engine.StartWatching(args); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		fmt.Println("watching for changes, press Ctrl-C to stop")

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		if err := engine.StopWatching(); err != nil {
			logger.Error("Error stopping watcher", zap.Error(err))
		}
	},
}
