package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AkimioJR/asslayer-go/ass"
	"github.com/AkimioJR/asslayer-go/charset"
)

func (a *app) stylesCommand() *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "styles [file]",
		Short: "List the style names defined in an ASS file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer f.Close()

			r, err := charset.NewReader(f, encoding)
			if err != nil {
				return err
			}
			names, err := ass.ListStyles(r)
			if err != nil {
				return err
			}
			a.logger.Debug("styles found", "file", args[0], "count", len(names))
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&encoding, "encoding", "e", charset.Auto, "input encoding")
	return cmd
}
