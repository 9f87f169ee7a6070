package layered

import (
	"github.com/charmbracelet/log"

	"github.com/AkimioJR/asslayer-go/ass"
)

const defaultHighWaterMark = 16 * 1024 // WriterSink 缓冲上限

type Option func(*config)

type config struct {
	targetStyles map[string]struct{} // nil 表示不过滤
	maxLineSize  int
	logger       *log.Logger
}

func newConfig(opts []Option) *config {
	c := &config{
		maxLineSize: ass.MaxLineSize,
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// 样式不在 targetStyles 中的行原样输出
func (c *config) eligible(style string) bool {
	if c.targetStyles == nil {
		return true
	}
	_, ok := c.targetStyles[style]
	return ok
}

// WithTargetStyles 只展开指定样式的 Dialogue 行
// 传入空列表时所有 Dialogue 行都原样输出
func WithTargetStyles(styles ...string) Option {
	return func(c *config) {
		c.targetStyles = make(map[string]struct{}, len(styles))
		for _, s := range styles {
			c.targetStyles[s] = struct{}{}
		}
	}
}

func WithMaxLineSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxLineSize = n
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

type SinkOption func(*WriterSink)

// WithHighWaterMark 缓冲字节数达到 n 后 Write 返回 false
func WithHighWaterMark(n int) SinkOption {
	return func(s *WriterSink) {
		if n > 0 {
			s.highWaterMark = n
		}
	}
}
