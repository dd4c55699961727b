package contrast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weaming/colorlab/colorspace"
)

func TestWCAG_BlackOnWhite(t *testing.T) {
	black := colorspace.NewXYZ(0, 0, 0)
	white := colorspace.NewXYZ(0.9505, 1.0, 1.089)

	ratio := WCAG(black, white)
	require.InDelta(t, 21.0, ratio.Value(), 0.01)

	require.True(t, ratio.MeetsAA())
	require.True(t, ratio.MeetsAAA())
}

func TestWCAG_IdenticalIsOne(t *testing.T) {
	c := colorspace.NewXYZ(0.4, 0.5, 0.3)

	require.Equal(t, 1.0, WCAG(c, c).Value())
}

func TestWCAG_OrderIndependent(t *testing.T) {
	a := colorspace.NewXYZ(0, 0.2, 0)
	b := colorspace.NewXYZ(0, 0.8, 0)

	require.Equal(t, WCAG(a, b), WCAG(b, a))
}

func TestWCAG_Thresholds(t *testing.T) {
	require.True(t, Ratio(4.5).MeetsAA())
	require.False(t, Ratio(4.4).MeetsAA())
	require.True(t, Ratio(3.0).MeetsAALargeText())
	require.False(t, Ratio(6.9).MeetsAAA())
	require.True(t, Ratio(4.5).MeetsAAALargeText())
}

func TestWCAG_AcceptsRGBInput(t *testing.T) {
	// sRGB 白对灰 #767676 约 4.54:1，是 AA 正文的经典临界配色
	white := colorspace.NewRGB(colorspace.SRGB, 1, 1, 1)
	gray := colorspace.NewRGB8(colorspace.SRGB, 0x76, 0x76, 0x76)

	ratio := WCAG(white, gray)
	require.InDelta(t, 4.54, ratio.Value(), 0.05)
	require.True(t, ratio.MeetsAA())
}

func TestMichelson_Extremes(t *testing.T) {
	black := colorspace.NewXYZ(0, 0, 0)
	white := colorspace.NewXYZ(0.9505, 1.0, 1.089)

	require.Equal(t, 1.0, Michelson(black, white))
	require.Equal(t, 0.0, Michelson(white, white))
	require.Equal(t, 0.0, Michelson(black, black))
}

func TestMichelson_OrderIndependent(t *testing.T) {
	a := colorspace.NewXYZ(0, 0.2, 0)
	b := colorspace.NewXYZ(0, 0.8, 0)

	require.Equal(t, Michelson(a, b), Michelson(b, a))
	require.InDelta(t, 0.6, Michelson(a, b), 1e-12)
}
