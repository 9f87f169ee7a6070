package main

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

type app struct {
	logger  *log.Logger
	verbose bool
}

func newApp(w io.Writer) *app {
	return &app{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.InfoLevel,
		}),
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "asslayer-go",
		Short:        "Stack ASS dialogue lines into layered outline and shadow copies",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(a.transformCommand())
	root.AddCommand(a.previewCommand())
	root.AddCommand(a.stylesCommand())
	return root
}

// done 记录耗时
func (a *app) done(start time.Time, msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(start).Round(time.Millisecond))
	a.logger.Info(msg, keyvals...)
}
