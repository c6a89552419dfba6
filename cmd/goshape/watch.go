package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/philipparndt/goshape/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Print statistics whenever a shape model changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet period before reloading")
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]
	report := func(path string) {
		m, err := loadMesh(path)
		if err != nil {
			logs.Warn(err)
			return
		}
		if err := printInfo(path, m); err != nil {
			logs.Warn(err)
		}
	}

	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch([]string{filename}, report); err != nil {
		return err
	}

	report(filename)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logs.WithTag("path", filename).Info("watching for changes")
	fw.Run(ctx)
	return nil
}

