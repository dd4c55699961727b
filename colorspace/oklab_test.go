package colorspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOklab_D65White(t *testing.T) {
	white := XYZFromVector(IlluminantD65.White(Observer1931), DefaultContext())
	lab := OklabFromXYZ(white)

	require.InDelta(t, 1.0, lab.L, 2e-3)
	require.InDelta(t, 0.0, lab.A, 2e-3)
	require.InDelta(t, 0.0, lab.B, 2e-3)
}

func TestOklab_SRGBRedKnownValue(t *testing.T) {
	red := NewRGB(SRGB, 1, 0, 0)
	lab := OklabFromXYZ(red.ToXYZ())

	// Ottosson 参考实现给出的 sRGB 红
	require.InDelta(t, 0.628, lab.L, 2e-3)
	require.InDelta(t, 0.2249, lab.A, 2e-3)
	require.InDelta(t, 0.1258, lab.B, 2e-3)
}

func TestOklab_XYZRoundTrip(t *testing.T) {
	samples := []Oklab{
		NewOklab(0.8, 0.05, -0.1),
		NewOklab(0.3, -0.02, 0.03),
		NewOklab(0.999, 0, 0),
	}

	for _, lab := range samples {
		back := OklabFromXYZ(lab.ToXYZ())
		require.InDelta(t, lab.L, back.L, 1e-9)
		require.InDelta(t, lab.A, back.A, 1e-9)
		require.InDelta(t, lab.B, back.B, 1e-9)
	}
}

func TestOklab_AdaptsOtherWhitesFirst(t *testing.T) {
	// 同一个颜色从 IlluminantD50 环境转来，结果应与 IlluminantD65 下直接转换一致
	xyz := NewXYZ(0.3, 0.4, 0.5)
	viaD50 := OklabFromXYZ(xyz.AdaptTo(DefaultContext().WithIlluminant(IlluminantD50)))
	direct := OklabFromXYZ(xyz)

	require.InDelta(t, direct.L, viaD50.L, 1e-8)
	require.InDelta(t, direct.A, viaD50.A, 1e-8)
	require.InDelta(t, direct.B, viaD50.B, 1e-8)
}

func TestOklch_RoundTrip(t *testing.T) {
	lab := NewOklab(0.6, 0.1, -0.08)

	back := lab.ToOklch().ToOklab()
	require.InDelta(t, lab.A, back.A, 1e-12)
	require.InDelta(t, lab.B, back.B, 1e-12)
}

func TestOklch_HueNormalized(t *testing.T) {
	c := NewOklch(0.5, 0.1, -30)

	require.InDelta(t, 330.0, c.H, 1e-12)
}
