package ass

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ListStyles 按出现顺序返回 [V4+ Styles] / [V4 Styles] 中的样式名（去重）
func ListStyles(reader io.Reader) ([]string, error) {
	var (
		lineNum        uint
		inStyleSection bool
		hasStyle       bool
		format         *FormatInfo
		seen           = make(map[string]struct{})
		names          = make([]string, 0)
	)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// 检查区块开始
		switch {
		case startWith(line, "[V4+ Styles]"), startWith(line, "[V4 Styles]"):
			inStyleSection = true
			hasStyle = true
			format = nil // 重置格式定义
			continue
		case startWith(line, "["):
			inStyleSection = false
			continue
		}
		if !inStyleSection {
			continue
		}

		switch {
		case startWith(line, "Format:"):
			f, err := ParseFormat(line)
			if err != nil {
				return nil, fmt.Errorf("failed to parse style format at line %d: %w", lineNum, err)
			}
			format = f

		case startWith(line, "Style:"):
			if format == nil {
				return nil, fmt.Errorf("style at line %d: %w", lineNum, ErrMissingFormat)
			}
			fields, err := ParseDataLine(line, format)
			if err != nil {
				return nil, fmt.Errorf("failed to parse style at line %d: %w", lineNum, err)
			}
			name, ok := fields["Name"]
			if !ok || name == "" {
				name = defaultStyleName
			}
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ass styles: %w", err)
	}
	if !hasStyle {
		return nil, ErrStyleNotFound
	}
	return names, nil
}
