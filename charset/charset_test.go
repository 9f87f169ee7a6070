package charset_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"

	"github.com/AkimioJR/asslayer-go/charset"
)

const (
	line     = "Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,反复读了很多遍\r\n"
	cyrillic = "Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Привет\n"
)

func decode(t *testing.T, data []byte, name string) string {
	t.Helper()
	r, err := charset.NewReader(strings.NewReader(string(data)), name)
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestNewReader(t *testing.T) {
	gbk, err := simplifiedchinese.GBK.NewEncoder().String(line)
	require.NoError(t, err)
	koi8r, err := charmap.KOI8R.NewEncoder().String(cyrillic)
	require.NoError(t, err)
	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(line)
	require.NoError(t, err)
	utf16be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().String(line)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		data     string
		encoding string
		expect   string
	}{
		{"UTF-8无BOM自动", line, charset.Auto, line},
		{"UTF-8带BOM自动", "\xef\xbb\xbf" + line, "", line},
		{"UTF-8带BOM指定", "\xef\xbb\xbf" + line, "utf-8", line},
		{"UTF-16LE带BOM自动", utf16le, charset.Auto, line},
		{"UTF-16BE带BOM自动", utf16be, charset.Auto, line},
		{"UTF-16BE指定", utf16be, "UTF-16BE", line},
		{"GBK", gbk, "gbk", line},
		{"GB18030", gbk, "GB18030", line},
		{"IANA名称", koi8r, "koi8-r", cyrillic},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, decode(t, []byte(tc.data), tc.encoding))
		})
	}
}

func TestNewReaderUnsupported(t *testing.T) {
	_, err := charset.NewReader(strings.NewReader(line), "klingon")
	var target charset.ErrUnsupportedEncoding
	require.ErrorAs(t, err, &target)
	assert.Equal(t, charset.ErrUnsupportedEncoding("klingon"), target)
}
