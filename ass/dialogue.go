package ass

import "strings"

// Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
const (
	fieldLayer = iota
	fieldStart
	fieldEnd
	fieldStyle
	fieldName
	fieldMarginL
	fieldMarginR
	fieldMarginV
	fieldEffect
	fieldText
	dialogueFieldCount
)

// MatchDialogue 判断一行是否为 Dialogue 行，匹配规则等价于
//
//	^Dialogue: [^,]+(,[^,]+,[^,]+,([^,]*),[^,]*,\d+,\d+,\d+,[^,]*,)(.*)$
//
// 只有 Text 字段可以包含逗号，区分大小写
func MatchDialogue(line string) (DialogueLine, bool) {
	// Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,{\fad(300,300)}Hello, world
	if !strings.HasPrefix(line, dialoguePrefix) {
		return DialogueLine{}, false
	}
	body := line[len(dialoguePrefix):]

	fields := strings.SplitN(body, ",", dialogueFieldCount)
	if len(fields) != dialogueFieldCount {
		return DialogueLine{}, false
	}
	for _, i := range []int{fieldLayer, fieldStart, fieldEnd} {
		if fields[i] == "" {
			return DialogueLine{}, false
		}
	}
	for _, i := range []int{fieldMarginL, fieldMarginR, fieldMarginV} {
		if !isDigits(fields[i]) {
			return DialogueLine{}, false
		}
	}

	text := fields[fieldText]
	return DialogueLine{
		Rest:  body[len(fields[fieldLayer]) : len(body)-len(text)],
		Style: fields[fieldStyle],
		Text:  text,
	}, true
}
