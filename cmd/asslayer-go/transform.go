package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AkimioJR/asslayer-go/charset"
	"github.com/AkimioJR/asslayer-go/layered"
	"github.com/AkimioJR/asslayer-go/preset"
)

type transformOpts struct {
	input    string   // 输入文件，"-" 为 stdin
	output   string   // 输出文件，"-" 为 stdout
	preset   string   // 层预设
	styles   []string // 覆盖预设中的 target_styles
	encoding string   // 覆盖预设中的 encoding
}

func (a *app) transformCommand() *cobra.Command {
	var opts transformOpts

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Expand dialogue lines of an ASS file into stacked layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := preset.Load(opts.preset)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("style") {
				p.TargetStyles = opts.styles
			}
			if cmd.Flags().Changed("encoding") {
				p.Encoding = opts.encoding
			}
			return a.runTransform(cmd, opts, p)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "input ass file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "output ass file")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "layer preset (TOML)")
	cmd.Flags().StringSliceVarP(&opts.styles, "style", "s", nil, "only expand dialogue lines with these styles")
	cmd.Flags().StringVarP(&opts.encoding, "encoding", "e", charset.Auto, "input encoding")
	_ = cmd.MarkFlagRequired("preset")
	return cmd
}

func (a *app) runTransform(cmd *cobra.Command, opts transformOpts, p *preset.Preset) error {
	start := time.Now()

	in := io.Reader(cmd.InOrStdin())
	if opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	in, err := charset.NewReader(in, p.Encoding)
	if err != nil {
		return err
	}

	var topts []layered.Option
	topts = append(topts, layered.WithLogger(a.logger))
	if len(p.TargetStyles) > 0 {
		topts = append(topts, layered.WithTargetStyles(p.TargetStyles...))
	}

	if opts.output == "-" {
		stats, err := layered.TransformWriter(cmd.Context(), in, cmd.OutOrStdout(), p.Layers, topts...)
		if err != nil {
			return err
		}
		a.done(start, "transformed", "lines", stats.LinesRead, "expanded", stats.Expanded)
		return nil
	}

	// 先写入同目录的临时文件，成功后再替换
	tmp, err := os.CreateTemp(filepath.Dir(opts.output), ".asslayer-*.ass")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to create output: %w", err)
	}

	stats, err := layered.TransformWriter(cmd.Context(), in, tmp, p.Layers, topts...)
	if cerr := tmp.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close output: %w", cerr)
	}
	if err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), opts.output); err != nil {
		return fmt.Errorf("failed to replace output: %w", err)
	}

	a.logger.Debug("transform stats",
		"passed", stats.PassedThrough, "written", stats.LinesWritten, "suspended", stats.Suspended)
	a.done(start, "transformed", "output", opts.output, "lines", stats.LinesRead, "expanded", stats.Expanded)
	return nil
}
