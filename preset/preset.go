// Package preset 读取 TOML 格式的层预设
//
//	encoding = "auto"
//	target_styles = ["Default"]
//
//	[[layers]]
//	color = "#FEE951"
//	thickness = 2
//	blur = 1
//	opacity = 255
//	offset_x = 0
//	offset_y = 0
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/AkimioJR/asslayer-go/ass"
	"github.com/AkimioJR/asslayer-go/charset"
)

var ErrUnknownKeys = errors.New("unknown keys in preset")

type Preset struct {
	Encoding     string          `toml:"encoding"`      // 输入编码，默认 auto
	TargetStyles []string        `toml:"target_styles"` // 为空时展开所有样式
	Layers       []ass.LayerSpec `toml:"layers"`        // 从前到后
}

// Load 读取并校验预设文件
func Load(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preset: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

func Decode(r io.Reader) (*Preset, error) {
	var p Preset
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}

	if p.Encoding == "" {
		p.Encoding = charset.Auto
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate 检查所有层，与转换前的检查一致
func (p *Preset) Validate() error {
	_, err := ass.BuildTags(p.Layers)
	return err
}
