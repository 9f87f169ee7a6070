package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/AkimioJR/asslayer-go/preset"
	"github.com/AkimioJR/asslayer-go/preview"
)

func (a *app) previewCommand() *cobra.Command {
	var presetPath string
	p := preview.Previewer{Logger: a.logger}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write a sample script that shows every layer of a preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			ps, err := preset.Load(presetPath)
			if err != nil {
				return err
			}
			if err := p.Preview(cmd.Context(), ps.Layers); err != nil {
				return err
			}
			a.done(start, "preview written", "path", p.Path, "layers", len(ps.Layers))
			return nil
		},
	}

	cmd.Flags().StringVarP(&presetPath, "preset", "p", "", "layer preset (TOML)")
	cmd.Flags().StringVarP(&p.Path, "output", "o", preview.DefaultPath, "preview script path")
	cmd.Flags().StringVarP(&p.Text, "text", "t", "", "sample text")
	_ = cmd.MarkFlagRequired("preset")
	return cmd
}
