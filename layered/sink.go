package layered

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

var ErrSinkClosed = errors.New("sink closed")

// Sink 为带背压的输出端，只允许一个写入者
//
// Write 返回 false 表示数据已接收但缓冲已满，写入者需要等待 Ready 后再写。
// Done 在 Sink 关闭或出错后关闭，Err 返回出错原因。
type Sink interface {
	Write(chunk string) (accepted bool, err error)
	Ready() <-chan struct{}
	Done() <-chan struct{}
	Err() error
}

// WriterSink 在后台 goroutine 中把数据写入 io.Writer
type WriterSink struct {
	w             io.Writer
	highWaterMark int

	mu        sync.Mutex
	pending   []string
	buffered  int  // 尚未写入 w 的字节数
	needDrain bool // 已返回过 false，清空后需要发出 Ready
	closing   bool
	aborted   bool // Abort 之后不再写入 w
	err       error

	wake     chan struct{}
	ready    chan struct{}
	done     chan struct{}
	doneOnce sync.Once
}

func NewWriterSink(w io.Writer, opts ...SinkOption) *WriterSink {
	s := &WriterSink{
		w:             w,
		highWaterMark: defaultHighWaterMark,
		wake:          make(chan struct{}, 1),
		ready:         make(chan struct{}, 1),
		done:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.loop()
	return s
}

func (s *WriterSink) Write(chunk string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return false, s.err
	}
	if s.closing {
		return false, ErrSinkClosed
	}

	s.pending = append(s.pending, chunk)
	s.buffered += len(chunk)
	s.notify()

	if s.buffered >= s.highWaterMark {
		s.needDrain = true
		return false, nil
	}
	return true, nil
}

func (s *WriterSink) Ready() <-chan struct{} { return s.ready }

func (s *WriterSink) Done() <-chan struct{} { return s.done }

func (s *WriterSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close 写完所有缓冲数据后返回，不会关闭底层的 io.Writer
func (s *WriterSink) Close() error {
	s.mu.Lock()
	s.closing = true
	s.notify()
	s.mu.Unlock()

	<-s.done
	return s.Err()
}

// Abort 丢弃缓冲数据并立即关闭，不等待底层 io.Writer
// 正在进行的写入在后台结束后被忽略
func (s *WriterSink) Abort() {
	s.mu.Lock()
	s.closing = true
	s.aborted = true
	s.pending = nil
	s.buffered = 0
	if s.err == nil {
		s.err = ErrSinkClosed
	}
	s.notify()
	s.mu.Unlock()

	s.finish()
}

func (s *WriterSink) finish() {
	s.doneOnce.Do(func() { close(s.done) })
}

func (s *WriterSink) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *WriterSink) loop() {
	defer s.finish()

	for {
		s.mu.Lock()
		batch := s.pending
		s.pending = nil
		closing := s.closing
		s.mu.Unlock()

		if len(batch) == 0 {
			if closing {
				return
			}
			<-s.wake
			continue
		}

		for _, chunk := range batch {
			if _, err := io.WriteString(s.w, chunk); err != nil {
				s.mu.Lock()
				if s.err == nil {
					s.err = fmt.Errorf("write to sink: %w", err)
				}
				s.pending = nil
				s.mu.Unlock()
				return
			}
			s.mu.Lock()
			if s.aborted {
				s.mu.Unlock()
				return
			}
			s.buffered -= len(chunk)
			s.mu.Unlock()
		}

		s.mu.Lock()
		if s.buffered == 0 && s.needDrain {
			s.needDrain = false
			select {
			case s.ready <- struct{}{}:
			default:
			}
		}
		s.mu.Unlock()
	}
}

var _ Sink = (*WriterSink)(nil)
