package ass

import (
	"errors"
	"fmt"
)

// LayerSpec 描述叠加效果中的一层
// 切片中下标 0 为最前层
type LayerSpec struct {
	Color     string  `toml:"color"`     // #RRGGBB，为空时不覆盖颜色
	Thickness float64 `toml:"thickness"` // 边框宽度
	Blur      float64 `toml:"blur"`      // 边框模糊半径
	Opacity   int     `toml:"opacity"`   // 不透明度 0-255，255 为完全不透明
	OffsetX   float64 `toml:"offset_x"`  // 阴影 X 偏移
	OffsetY   float64 `toml:"offset_y"`  // 阴影 Y 偏移
}

type FormatInfo struct {
	Fields []string // 字段名称列表
}

// DialogueLine 为匹配成功的 Dialogue 行
type DialogueLine struct {
	Rest  string // Layer 字段之后到 Effect 字段（含首尾逗号），原样保留
	Style string // 样式名，仅用于过滤
	Text  string // Text 字段
}

// Expand 生成指定层号与标签的新 Dialogue 行（不含换行符）
func (d *DialogueLine) Expand(layerIndex int, tags string) string {
	return fmt.Sprintf("%s%d%s%s%s", dialoguePrefix, layerIndex, d.Rest, tags, d.Text)
}

const (
	MaxLineSize      = 1024 * 1024 // 单行最大长度
	dialoguePrefix   = "Dialogue: "
	defaultStyleName = "Default"
	minOpacity       = 0
	maxOpacity       = 255
	zeroShadowNudge  = 0.0001   // xshad = yshad = 0 时不会渲染阴影
	borderPadMarker  = "\u200d" // 零宽连接符
	tertiaryAlphaTag = `\3a&HFF&`
)

var (
	ErrNoLayers      = errors.New("no layers given")                      // 层列表为空
	ErrMissingFormat = errors.New("missing format line")                  // 缺少格式定义行
	ErrInvalidFormat = errors.New("invalid line format")                  // 缺少冒号等
	ErrStyleNotFound = errors.New("no [V4+ Styles] or [V4 Styles] found") // 未找到样式模块
)

// ErrInvalidOpacity 不透明度超出 [0,255]
type ErrInvalidOpacity struct {
	Value int
}

func (e *ErrInvalidOpacity) Error() string {
	return fmt.Sprintf("invalid opacity: %d", e.Value)
}

// ErrMalformedColor 颜色不是 #RRGGBB 格式
type ErrMalformedColor struct {
	Value string
}

func (e *ErrMalformedColor) Error() string {
	return fmt.Sprintf(`malformed color: "%s", want #RRGGBB`, e.Value)
}

// ErrInvalidLayerValue 数值字段不合法（负数、NaN、Inf）
type ErrInvalidLayerValue struct {
	Field string
	Value float64
}

func (e *ErrInvalidLayerValue) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}

var _ error = (*ErrInvalidOpacity)(nil)
var _ error = (*ErrMalformedColor)(nil)
var _ error = (*ErrInvalidLayerValue)(nil)
