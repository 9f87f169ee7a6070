// Package preview 把预览脚本写到固定路径，并通知外部播放器重新加载
package preview

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/AkimioJR/asslayer-go/ass"
)

const (
	DefaultPath          = "temp.ass"
	defaultRetryInterval = time.Second
)

// Reloader 通知已运行的播放器重新加载字幕，具体协议由调用方实现
type Reloader interface {
	Reload(ctx context.Context) error
}

type ReloaderFunc func(ctx context.Context) error

func (f ReloaderFunc) Reload(ctx context.Context) error { return f(ctx) }

type Previewer struct {
	Path          string        // 预览脚本路径，为空时使用 DefaultPath
	Text          string        // 示例文本，为空时使用 ass.DefaultPreviewText
	Reloader      Reloader      // 为 nil 时只写文件
	RetryInterval time.Duration // Reload 失败后的重试间隔
	Logger        *log.Logger
}

// Write 生成预览脚本并写入 Path
func (p *Previewer) Write(layers []ass.LayerSpec) error {
	script, err := ass.GeneratePreview(layers, p.Text)
	if err != nil {
		return fmt.Errorf("failed to generate preview: %w", err)
	}
	if err := os.WriteFile(p.path(), []byte(script), 0o644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}

// Preview 写入预览脚本后调用 Reloader，失败时按 RetryInterval 重试直到 ctx 结束
func (p *Previewer) Preview(ctx context.Context, layers []ass.LayerSpec) error {
	if err := p.Write(layers); err != nil {
		return err
	}
	if p.Reloader == nil {
		return nil
	}

	interval := p.RetryInterval
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	logger := p.Logger
	if logger == nil {
		logger = log.Default()
	}

	for {
		err := p.Reloader.Reload(ctx)
		if err == nil {
			logger.Debug("preview reloaded", "path", p.path())
			return nil
		}
		logger.Warn("cannot reach player, retrying", "err", err, "interval", interval)

		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to reload preview: %w", ctx.Err())
		case <-time.After(interval):
		}
	}
}

func (p *Previewer) path() string {
	if p.Path == "" {
		return DefaultPath
	}
	return p.Path
}
