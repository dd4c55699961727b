package colorspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLab_WhiteAndBlack(t *testing.T) {
	white := IlluminantD65.White(Observer1931)
	lab := LabFromXYZ(XYZFromVector(white, DefaultContext()))

	require.InDelta(t, 100.0, lab.L, 1e-9)
	require.InDelta(t, 0.0, lab.A, 1e-9)
	require.InDelta(t, 0.0, lab.B, 1e-9)

	black := LabFromXYZ(NewXYZ(0, 0, 0))
	require.InDelta(t, 0.0, black.L, 1e-9)
}

func TestLab_MidLightness(t *testing.T) {
	// L = 50 对应 Y/Yn = ((50+16)/116)³
	y := math.Pow(66.0/116.0, 3)
	lab := LabFromXYZ(NewXYZ(0.95047*y, y, 1.08883*y))

	require.InDelta(t, 50.0, lab.L, 1e-9)
}

func TestLab_RoundTrip(t *testing.T) {
	samples := []Lab{
		NewLab(50, 20, -30),
		NewLab(97, -5, 90),
		NewLab(10, 0.5, -0.5),
		NewLab(3, 1, 1), // 趾部线性段
	}

	for _, lab := range samples {
		back := LabFromXYZ(lab.ToXYZ())
		require.InDelta(t, lab.L, back.L, 1e-9)
		require.InDelta(t, lab.A, back.A, 1e-9)
		require.InDelta(t, lab.B, back.B, 1e-9)
	}
}

func TestLab_LChRoundTrip(t *testing.T) {
	lab := NewLab(62, 30, -40)

	lch := lab.ToLCh()
	require.InDelta(t, 50.0, lch.C, 1e-9)

	back := lch.ToLab()
	require.InDelta(t, lab.A, back.A, 1e-9)
	require.InDelta(t, lab.B, back.B, 1e-9)
}

func TestLCh_HueRange(t *testing.T) {
	lch := NewLab(50, -10, -10).ToLCh()

	require.GreaterOrEqual(t, lch.H, 0.0)
	require.Less(t, lch.H, 360.0)
	require.InDelta(t, 225.0, lch.H, 1e-9)
}

func TestLab_AdaptTo(t *testing.T) {
	lab := NewLab(50, 20, -30)
	d50 := DefaultContext().WithIlluminant(IlluminantD50)

	adapted := lab.AdaptTo(d50)
	require.Equal(t, "D50", adapted.Context().Illuminant.Name())

	back := adapted.AdaptTo(DefaultContext())
	require.InDelta(t, lab.L, back.L, 1e-6)
	require.InDelta(t, lab.A, back.A, 1e-6)
	require.InDelta(t, lab.B, back.B, 1e-6)
}

func TestLuv_WhiteAndBlack(t *testing.T) {
	white := IlluminantD65.White(Observer1931)
	luv := LuvFromXYZ(XYZFromVector(white, DefaultContext()))

	require.InDelta(t, 100.0, luv.L, 1e-9)
	require.InDelta(t, 0.0, luv.U, 1e-9)
	require.InDelta(t, 0.0, luv.V, 1e-9)

	// L 为零时逆变换直接收敛到黑
	black := NewLuv(0, 0, 0).ToXYZ()
	require.InDelta(t, 0.0, black.X, 1e-12)
	require.InDelta(t, 0.0, black.Y, 1e-12)
	require.InDelta(t, 0.0, black.Z, 1e-12)
}

func TestLuv_RoundTrip(t *testing.T) {
	samples := []XYZ{
		NewXYZ(0.3, 0.4, 0.5),
		NewXYZ(0.2, 0.1, 0.05),
		NewXYZ(0.9, 0.95, 1.0),
	}

	for _, xyz := range samples {
		luv := LuvFromXYZ(xyz)
		back := luv.ToXYZ()

		require.InDelta(t, xyz.X, back.X, 1e-9)
		require.InDelta(t, xyz.Y, back.Y, 1e-9)
		require.InDelta(t, xyz.Z, back.Z, 1e-9)
	}
}

func TestLuv_LChuvRoundTrip(t *testing.T) {
	luv := NewLuv(60, -25, 40)

	back := luv.ToLChuv().ToLuv()
	require.InDelta(t, luv.U, back.U, 1e-9)
	require.InDelta(t, luv.V, back.V, 1e-9)
}

func TestXyY_RoundTrip(t *testing.T) {
	xyz := NewXYZ(0.3, 0.4, 0.5)

	xyy := XyYFromXYZ(xyz)
	back := xyy.ToXYZ()

	require.InDelta(t, xyz.X, back.X, 1e-12)
	require.InDelta(t, xyz.Y, back.Y, 1e-12)
	require.InDelta(t, xyz.Z, back.Z, 1e-12)
}

func TestXyY_D65Chromaticity(t *testing.T) {
	white := IlluminantD65.White(Observer1931)
	xyy := XyYFromXYZ(XYZFromVector(white, DefaultContext()))

	require.InDelta(t, 0.3127, xyy.X, 2e-4)
	require.InDelta(t, 0.3290, xyy.Y, 2e-4)
	require.InDelta(t, 1.0, xyy.Lum, 1e-12)
}

func TestXyY_ZeroChromaticityY(t *testing.T) {
	// 色度 y 为零时按黑处理，避免除零
	xyz := NewXyY(0.5, 0.0, 0.7).ToXYZ()

	require.Equal(t, 0.0, xyz.X)
	require.Equal(t, 0.0, xyz.Y)
	require.Equal(t, 0.0, xyz.Z)
}

func TestXyY_BlackKeepsZeroLuminance(t *testing.T) {
	xyy := XyYFromXYZ(NewXYZ(0, 0, 0))

	require.Equal(t, 0.0, xyy.Lum)
	require.Equal(t, 0.0, xyy.X)
	require.Equal(t, 0.0, xyy.Y)
}
