package colorspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHex_SixDigits(t *testing.T) {
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)

	require.InDelta(t, 1.0, c.R, 1e-12)
	require.InDelta(t, 128.0/255.0, c.G, 1e-12)
	require.InDelta(t, 0.0, c.B, 1e-12)
	require.Equal(t, 1.0, c.Alpha())
}

func TestParseHex_Shorthand(t *testing.T) {
	c, err := ParseHex("#f80")
	require.NoError(t, err)

	// 短格式每位重复展开：f → ff
	require.InDelta(t, 1.0, c.R, 1e-12)
	require.InDelta(t, 136.0/255.0, c.G, 1e-12)
}

func TestParseHex_WithAlpha(t *testing.T) {
	c, err := ParseHex("#ff800080")
	require.NoError(t, err)
	require.InDelta(t, 128.0/255.0, c.Alpha(), 1e-12)

	c, err = ParseHex("#f808")
	require.NoError(t, err)
	require.InDelta(t, 136.0/255.0, c.Alpha(), 1e-12)
}

func TestParseHex_NoHashAndCase(t *testing.T) {
	a, err := ParseHex("FF8000")
	require.NoError(t, err)

	b, err := ParseHex("#ff8000")
	require.NoError(t, err)
	require.Equal(t, a.Components(), b.Components())
}

func TestParseHex_Invalid(t *testing.T) {
	for _, s := range []string{"", "#ff", "#ff80001", "#gg0000", "not_a_color"} {
		_, err := ParseHex(s)
		require.Error(t, err, "输入 %q", s)
	}
}

func TestHex_Format(t *testing.T) {
	require.Equal(t, "#ff8000", NewRGB8(SRGB, 255, 128, 0).Hex())
	require.Equal(t, "#ff800080", NewRGB8(SRGB, 255, 128, 0).WithAlpha(128.0/255.0).HexA())
}

func TestHex_RoundTrip(t *testing.T) {
	c, err := ParseHex("#1a2b3c")
	require.NoError(t, err)
	require.Equal(t, "#1a2b3c", c.Hex())
}

func TestHex_ClampsOutOfRange(t *testing.T) {
	require.Equal(t, "#ff0000", NewRGB(SRGB, 1.5, -0.2, 0).Hex())
}
