package preview_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AkimioJR/asslayer-go/ass"
	"github.com/AkimioJR/asslayer-go/preview"
)

var layers = []ass.LayerSpec{
	{Color: "#FFFFFF", Thickness: 2, Opacity: 255},
	{Color: "#000000", Thickness: 6, Blur: 4, Opacity: 160, OffsetX: 3, OffsetY: 3},
}

func TestPreviewWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp.ass")
	p := &preview.Previewer{Path: path, Text: "示例"}
	require.NoError(t, p.Write(layers))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	expect, err := ass.GeneratePreview(layers, "示例")
	require.NoError(t, err)
	assert.Equal(t, expect, string(data))
}

func TestPreviewRetriesReload(t *testing.T) {
	calls := 0
	p := &preview.Previewer{
		Path:          filepath.Join(t.TempDir(), "temp.ass"),
		RetryInterval: time.Millisecond,
		Logger:        log.New(io.Discard),
		Reloader: preview.ReloaderFunc(func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("pipe not ready")
			}
			return nil
		}),
	}
	require.NoError(t, p.Preview(context.Background(), layers))
	assert.Equal(t, 3, calls)
}

func TestPreviewStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	p := &preview.Previewer{
		Path:          filepath.Join(t.TempDir(), "temp.ass"),
		RetryInterval: 5 * time.Millisecond,
		Logger:        log.New(io.Discard),
		Reloader: preview.ReloaderFunc(func(ctx context.Context) error {
			return errors.New("pipe not ready")
		}),
	}
	err := p.Preview(ctx, layers)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPreviewInvalidLayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp.ass")
	p := &preview.Previewer{Path: path}
	err := p.Write([]ass.LayerSpec{{Opacity: 999}})

	var target *ass.ErrInvalidOpacity
	require.ErrorAs(t, err, &target)
	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
	assert.False(t, strings.Contains(err.Error(), path))
}
