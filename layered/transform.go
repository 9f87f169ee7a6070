package layered

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/AkimioJR/asslayer-go/ass"
)

// Stats 记录一次转换的行数统计
type Stats struct {
	LinesRead     int // 读入行数
	Expanded      int // 展开的 Dialogue 行数
	PassedThrough int // 原样输出的行数
	LinesWritten  int // 输出行数
	Suspended     int // 等待 Ready 的次数
}

// Transform 逐行读取 reader，把符合条件的 Dialogue 行按 layers 展开为多行写入 sink
//
// layers[0] 为最前层，最先写出，层号为 len(layers)-1，最后一层层号为 0。
// 所有层的标签在读取前生成，任一层不合法时不会写出任何内容。
// 每次 Write 返回 false 后会等待 sink 的 Ready 再继续，ctx 取消或 sink 关闭时返回错误。
// 输出统一使用 \n 换行，出错时已写出的内容不会回滚。
func Transform(ctx context.Context, reader io.Reader, sink Sink, layers []ass.LayerSpec, opts ...Option) (Stats, error) {
	var stats Stats

	tags, err := ass.BuildTags(layers)
	if err != nil {
		return stats, fmt.Errorf("failed to build layer tags: %w", err)
	}

	cfg := newConfig(opts)
	e := &emitter{ctx: ctx, sink: sink, stats: &stats, logger: cfg.logger}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, min(64*1024, cfg.maxLineSize)), cfg.maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line := scanner.Text()
		stats.LinesRead++

		d, ok := ass.MatchDialogue(line)
		if !ok || !cfg.eligible(d.Style) {
			stats.PassedThrough++
			if err := e.emit(line); err != nil {
				return stats, fmt.Errorf("line %d: %w", stats.LinesRead, err)
			}
			continue
		}

		stats.Expanded++
		for i, t := range tags {
			if err := e.emit(d.Expand(len(tags)-1-i, t)); err != nil {
				return stats, fmt.Errorf("line %d: %w", stats.LinesRead, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read ass line %d: %w", stats.LinesRead+1, err)
	}
	return stats, nil
}

// TransformWriter 使用 WriterSink 写入 w
// 成功时写完所有缓冲后返回，出错或 ctx 取消时丢弃缓冲立即返回
func TransformWriter(ctx context.Context, reader io.Reader, w io.Writer, layers []ass.LayerSpec, opts ...Option) (Stats, error) {
	sink := NewWriterSink(w)
	stats, err := Transform(ctx, reader, sink, layers, opts...)
	if err != nil {
		sink.Abort()
		return stats, err
	}
	return stats, sink.Close()
}

type emitter struct {
	ctx    context.Context
	sink   Sink
	stats  *Stats
	logger *log.Logger
}

// 写入一行，sink 未接收时阻塞到 Ready
func (e *emitter) emit(line string) error {
	accepted, err := e.sink.Write(line + "\n")
	if err != nil {
		return err
	}
	e.stats.LinesWritten++
	if accepted {
		return nil
	}

	e.stats.Suspended++
	e.logger.Debug("sink is full, waiting for drain", "written", e.stats.LinesWritten)

	select {
	case <-e.sink.Ready():
		return nil
	case <-e.sink.Done():
		if err := e.sink.Err(); err != nil {
			return err
		}
		return ErrSinkClosed
	case <-e.ctx.Done():
		return e.ctx.Err()
	}
}
