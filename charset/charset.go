// Package charset 将各种编码的字幕文件流式转换为 UTF-8
package charset

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Auto 根据 BOM 判断 UTF-8 / UTF-16，没有 BOM 时按 UTF-8 处理
const Auto = "auto"

type ErrUnsupportedEncoding string

func (e ErrUnsupportedEncoding) Error() string {
	return fmt.Sprintf(`unsupported encoding type: "%s"`, string(e))
}

var _ error = ErrUnsupportedEncoding("")

// NewReader 返回解码为 UTF-8 的 Reader，name 为空等同于 Auto
func NewReader(r io.Reader, name string) (io.Reader, error) {
	decoder, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, decoder), nil
}

func lookup(name string) (transform.Transformer, error) {
	// 选择解码器
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "AUTO":
		return unicode.BOMOverride(encoding.Nop.NewDecoder()), nil
	case "UTF-8", "UTF8":
		return unicode.UTF8BOM.NewDecoder(), nil
	case "UTF-16", "UTF-16LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case "UTF-16BE":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), nil
	case "GBK", "GB2312", "CP936":
		return simplifiedchinese.GBK.NewDecoder(), nil
	case "GB18030":
		return simplifiedchinese.GB18030.NewDecoder(), nil
	case "BIG-5", "BIG5", "CP950":
		return traditionalchinese.Big5.NewDecoder(), nil
	case "SHIFT_JIS", "SHIFT-JIS", "SJIS", "CP932":
		return japanese.ShiftJIS.NewDecoder(), nil
	case "EUC-JP":
		return japanese.EUCJP.NewDecoder(), nil
	case "EUC-KR", "CP949":
		return korean.EUCKR.NewDecoder(), nil
	case "ISO-8859-1", "LATIN1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "WINDOWS-1252", "CP1252":
		return charmap.Windows1252.NewDecoder(), nil
	}

	// 其他 IANA 注册的名称
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, ErrUnsupportedEncoding(name)
	}
	return enc.NewDecoder(), nil
}
