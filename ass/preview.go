package ass

import "strings"

// DefaultPreviewText 预览脚本默认显示的文本
const DefaultPreviewText = "Example text!!"

const previewHeader = `[Script Info]
Title: Default Aegisub file
ScriptType: v4.00+
WrapStyle: 0
ScaledBorderAndShadow: yes
YCbCr Matrix: TV.601
PlayResX: 1920
PlayResY: 1080

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,150,&H00FEE951,&H000E0EBF,&H00FFFFFF,&H00FF0000,1,0,0,0,100,100,0,0,1,0,0,2,10,10,100,1

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
`

// 预览行共用的 Start 到 Effect 字段
var previewDialogue = DialogueLine{
	Rest:  ",0:00:00.00,0:00:01.00," + defaultStyleName + ",,0,0,0,,",
	Style: defaultStyleName,
}

// GeneratePreview 生成只含一个样式、每层一行示例文本的完整脚本
// 层号与 BuildTags 的填充规则和文件转换一致
func GeneratePreview(layers []LayerSpec, text string) (string, error) {
	tags, err := BuildTags(layers)
	if err != nil {
		return "", err
	}
	if text == "" {
		text = DefaultPreviewText
	}

	d := previewDialogue
	d.Text = text

	var b strings.Builder
	b.WriteString(previewHeader)
	for i, t := range tags {
		b.WriteString(d.Expand(len(tags)-1-i, t))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
