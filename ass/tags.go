package ass

import (
	"fmt"
	"math"
	"strings"
)

// ComposeTags 根据层定义生成要插入到 Text 字段前的覆盖标签
// borderPad > 0 时在前面额外插入 {\bord<borderPad>} 与零宽连接符，
// 部分渲染器以第一个覆盖块的边框宽度计算叠加行的包围盒
func ComposeTags(layer LayerSpec, borderPad float64) (string, error) {
	if err := ValidateLayer(layer); err != nil {
		return "", err
	}

	var b strings.Builder
	if borderPad > 0 {
		b.WriteString(`{\bord` + formatNumber(borderPad) + `}` + borderPadMarker)
	}

	b.WriteString(`{\blur` + formatNumber(layer.Blur))
	b.WriteString(`\bord` + formatNumber(layer.Thickness))
	b.WriteString(tertiaryAlphaTag)
	b.WriteString(`\4a&H` + OpacityHex(layer.Opacity) + `&`)
	if layer.Color != "" {
		color, err := ConvertColor(layer.Color)
		if err != nil {
			return "", err
		}
		b.WriteString(`\4c` + color)
	}

	xshad := layer.OffsetX
	if layer.OffsetX == 0 && layer.OffsetY == 0 {
		xshad += zeroShadowNudge
	}
	b.WriteString(`\xshad` + formatNumber(xshad))
	b.WriteString(`\yshad` + formatNumber(layer.OffsetY) + `}`)
	return b.String(), nil
}

// BuildTags 为每一层预先生成标签，所有层共用最大边框宽度作为 borderPad
// 任一层不合法时直接返回错误
func BuildTags(layers []LayerSpec) ([]string, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}

	maxBorder := MaxThickness(layers)
	tags := make([]string, 0, len(layers))
	for i, layer := range layers {
		t, err := ComposeTags(layer, maxBorder)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// ValidateLayer 检查层定义，颜色为空视为不覆盖
func ValidateLayer(layer LayerSpec) error {
	if layer.Opacity < minOpacity || layer.Opacity > maxOpacity {
		return &ErrInvalidOpacity{Value: layer.Opacity}
	}
	if !nonNegative(layer.Thickness) {
		return &ErrInvalidLayerValue{Field: "thickness", Value: layer.Thickness}
	}
	if !nonNegative(layer.Blur) {
		return &ErrInvalidLayerValue{Field: "blur", Value: layer.Blur}
	}
	if !finite(layer.OffsetX) {
		return &ErrInvalidLayerValue{Field: "offsetX", Value: layer.OffsetX}
	}
	if !finite(layer.OffsetY) {
		return &ErrInvalidLayerValue{Field: "offsetY", Value: layer.OffsetY}
	}
	if layer.Color != "" && !isHexColor(layer.Color) {
		return &ErrMalformedColor{Value: layer.Color}
	}
	return nil
}

// OpacityHex 将不透明度转为 ASS 的透明度，两位大写十六进制
// 255 -> "00"，0 -> "FF"
func OpacityHex(opacity int) string {
	return fmt.Sprintf("%02X", maxOpacity-opacity)
}

// ConvertColor 将 #RRGGBB 转为 &HBBGGRR&
func ConvertColor(color string) (string, error) {
	if !isHexColor(color) {
		return "", &ErrMalformedColor{Value: color}
	}
	c := strings.ToUpper(color)
	return "&H" + c[5:7] + c[3:5] + c[1:3] + "&", nil
}

// MaxThickness 返回所有层中最大的边框宽度
func MaxThickness(layers []LayerSpec) float64 {
	var m float64
	for _, l := range layers {
		m = math.Max(m, l.Thickness)
	}
	return m
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return finite(v) && v >= 0
}
