package ass

import (
	"strconv"
	"strings"
)

// 判断字符串是否有前缀（不区分大小写）
func startWith(raw string, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(raw), strings.ToLower(prefix))
}

// 解析格式定义行（Format:）
func ParseFormat(line string) (*FormatInfo, error) {
	// Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidFormat
	}

	fieldNames := strings.Split(strings.TrimSpace(parts[1]), ",")

	// 清理字段名称
	for i := range fieldNames {
		fieldNames[i] = strings.TrimSpace(fieldNames[i])
	}

	return &FormatInfo{Fields: fieldNames}, nil
}

// 解析数据行（Style: 或 Dialogue:）并返回字段映射
// 最后一个字段保留其中的逗号
func ParseDataLine(line string, format *FormatInfo) (map[string]string, error) {
	// Style: Default,Arial,150,&H00FEE951,&H000E0EBF,&H00FFFFFF,&H00FF0000,1,0,0,0,100,100,0,0,1,0,0,2,10,10,100,1
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidFormat
	}

	fieldCount := len(format.Fields)
	values := strings.SplitN(strings.TrimSpace(parts[1]), ",", fieldCount)

	result := make(map[string]string, fieldCount)
	for i := 0; i < fieldCount && i < len(values); i++ {
		result[format.Fields[i]] = strings.TrimSpace(values[i])
	}
	return result, nil
}

// 数字按最短形式输出：2 -> "2"，0.5 -> "0.5"，-0 -> "0"
func formatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
