package colorspace

import (
	"fmt"
	"strings"
)

// ParseHex 解析十六进制颜色字符串为 sRGB 颜色
// 支持 #rgb、#rgba、#rrggbb、#rrggbbaa 四种格式，井号可省略，大小写不敏感
func ParseHex(s string) (RGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var digits [8]uint8
	for i := 0; i < len(raw) && i < 8; i++ {
		v, ok := hexDigit(raw[i])
		if !ok {
			return RGB{}, fmt.Errorf("无效的十六进制颜色 %q: 非法字符 %q", s, raw[i])
		}
		digits[i] = v
	}

	switch len(raw) {
	case 3:
		return NewRGB8(SRGB, digits[0]*17, digits[1]*17, digits[2]*17), nil
	case 4:
		c := NewRGB8(SRGB, digits[0]*17, digits[1]*17, digits[2]*17)
		return c.WithAlpha(float64(digits[3]*17) / 255.0), nil
	case 6:
		return NewRGB8(SRGB, digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]), nil
	case 8:
		c := NewRGB8(SRGB, digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5])
		return c.WithAlpha(float64(digits[6]<<4|digits[7]) / 255.0), nil
	default:
		return RGB{}, fmt.Errorf("无效的十六进制颜色 %q: 长度应为 3/4/6/8 位", s)
	}
}

// Hex 格式化为 #rrggbb（分量先截断到 [0, 1]）
func (c RGB) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HexA 格式化为 #rrggbbaa，包含不透明度
func (c RGB) HexA() string {
	r, g, b := c.Bytes()
	a := uint8(clamp01(c.alpha)*255 + 0.5)
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
