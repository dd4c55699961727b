package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weaming/colorlab/colorspace"
)

func TestParseColor_Hex(t *testing.T) {
	c, err := parseColor("#ff8000", colorspace.SRGB)
	require.NoError(t, err)

	rgb := c.(colorspace.RGB)
	require.InDelta(t, 1.0, rgb.R, 1e-12)
	require.InDelta(t, 128.0/255.0, rgb.G, 1e-12)
}

func TestParseColor_ModelSyntax(t *testing.T) {
	c, err := parseColor("lab(50, 2.6772, -79.7751)", colorspace.SRGB)
	require.NoError(t, err)

	lab := c.(colorspace.Lab)
	require.InDelta(t, 50.0, lab.L, 1e-12)
	require.InDelta(t, -79.7751, lab.B, 1e-12)
}

func TestParseColor_RGB8UsesSpace(t *testing.T) {
	c, err := parseColor("rgb8(255, 128, 0)", colorspace.DisplayP3)
	require.NoError(t, err)

	rgb := c.(colorspace.RGB)
	require.Equal(t, colorspace.DisplayP3, rgb.Space())
	require.InDelta(t, 128.0/255.0, rgb.G, 1e-12)
}

func TestParseColor_CMYKTakesFourComponents(t *testing.T) {
	_, err := parseColor("cmyk(0.1, 0.2, 0.3, 0.4)", colorspace.SRGB)
	require.NoError(t, err)

	_, err = parseColor("cmyk(0.1, 0.2, 0.3)", colorspace.SRGB)
	require.Error(t, err)
}

func TestParseColor_Errors(t *testing.T) {
	for _, s := range []string{"", "notacolor", "rgb(1, 2)", "rgb(a, b, c)", "foo(1, 2, 3)"} {
		_, err := parseColor(s, colorspace.SRGB)
		require.Error(t, err, "输入 %q", s)
	}
}

func TestFormatAs_RoundTrip(t *testing.T) {
	c, err := parseColor("#1a2b3c", colorspace.SRGB)
	require.NoError(t, err)

	out, err := formatAs(c, "hex", colorspace.SRGB)
	require.NoError(t, err)
	require.Equal(t, "#1a2b3c", out)
}

func TestFormatAs_KnownLab(t *testing.T) {
	c, err := parseColor("rgb(1, 1, 1)", colorspace.SRGB)
	require.NoError(t, err)

	out, err := formatAs(c, "lab", colorspace.SRGB)
	require.NoError(t, err)
	// 浮点尾差可能把 0 打成 -0.0000，只断言明度
	require.Contains(t, out, "lab(100.0000")
}

func TestFormatAs_UnknownModel(t *testing.T) {
	c, err := parseColor("#ffffff", colorspace.SRGB)
	require.NoError(t, err)

	_, err = formatAs(c, "yuv", colorspace.SRGB)
	require.Error(t, err)
}
