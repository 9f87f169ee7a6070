package preset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AkimioJR/asslayer-go/ass"
	"github.com/AkimioJR/asslayer-go/preset"
)

const presetText = `
target_styles = ["Default", "OP-JP"]

[[layers]]
color = "#FEE951"
thickness = 2
blur = 1
opacity = 255

[[layers]]
thickness = 6.5
blur = 3
opacity = 128
offset_x = 4
offset_y = -2
`

func TestDecode(t *testing.T) {
	p, err := preset.Decode(strings.NewReader(presetText))
	require.NoError(t, err)

	assert.Equal(t, "auto", p.Encoding)
	assert.Equal(t, []string{"Default", "OP-JP"}, p.TargetStyles)
	assert.Equal(t, []ass.LayerSpec{
		{Color: "#FEE951", Thickness: 2, Blur: 1, Opacity: 255},
		{Thickness: 6.5, Blur: 3, Opacity: 128, OffsetX: 4, OffsetY: -2},
	}, p.Layers)
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "未知字段",
			input: "[[layers]]\nopacity = 255\nalpha = 3\n",
			check: func(t *testing.T, err error) { require.ErrorIs(t, err, preset.ErrUnknownKeys) },
		},
		{
			name:  "不透明度越界",
			input: "[[layers]]\nopacity = 300\n",
			check: func(t *testing.T, err error) {
				var target *ass.ErrInvalidOpacity
				require.ErrorAs(t, err, &target)
			},
		},
		{
			name:  "颜色格式错误",
			input: "[[layers]]\nopacity = 255\ncolor = \"FEE951\"\n",
			check: func(t *testing.T, err error) {
				var target *ass.ErrMalformedColor
				require.ErrorAs(t, err, &target)
			},
		},
		{
			name:  "没有层",
			input: "encoding = \"gbk\"\n",
			check: func(t *testing.T, err error) { require.ErrorIs(t, err, ass.ErrNoLayers) },
		},
		{
			name:  "TOML语法错误",
			input: "[[layers]\n",
			check: func(t *testing.T, err error) { require.Error(t, err) },
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := preset.Decode(strings.NewReader(tc.input))
			tc.check(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layers.toml")
	require.NoError(t, os.WriteFile(path, []byte(presetText), 0o644))

	p, err := preset.Load(path)
	require.NoError(t, err)

	again, err := preset.Decode(strings.NewReader(presetText))
	require.NoError(t, err)
	assert.Equal(t, again, p, "Load 与 Decode 结果一致")

	_, err = preset.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
