package main

import (
	"fmt"
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/philipparndt/goshape/version"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logIndent  bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "goshape",
	Short: "Inspect and query triangular shape models",
	Long: `goshape loads triangular shape models from mesh text (OBJ style) or STL
files and answers geometric queries against them: ray casting, shadowing from
a point light, region growth around a facet or point, and rigid transforms.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", logs.InfoLevel.String(), "Log level (debug, info, warning, error)")
	flags.BoolVar(&logIndent, "log-indent", false, "Indent log entries")
	flags.BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	logs.SetLevel(logs.ParseLevel(logLevel))
	logs.Encoder = json.Marshal
	if logIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
