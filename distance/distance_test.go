package distance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weaming/colorlab/colorspace"
)

// Sharma 等人论文中的第一组测试色对
var (
	sharmaRef    = colorspace.NewLab(50.0, 2.6772, -79.7751)
	sharmaSample = colorspace.NewLab(50.0, 0.0, -82.7485)
)

func TestEuclidean_IdenticalIsZero(t *testing.T) {
	c := colorspace.NewLab(50, 10, -20)

	require.Equal(t, 0.0, Euclidean(c, c))
	require.Equal(t, 0.0, Manhattan(c, c))
	require.Equal(t, 0.0, CIE76(c, c))
}

func TestEuclidean_KnownValue(t *testing.T) {
	a := colorspace.NewLab(50, 0, 0)
	b := colorspace.NewLab(53, 4, 0)

	require.InDelta(t, 5.0, Euclidean(a, b), 1e-9)
	require.InDelta(t, 7.0, Manhattan(a, b), 1e-9)
}

func TestEuclidean_OrderIndependent(t *testing.T) {
	require.InDelta(t, Euclidean(sharmaRef, sharmaSample), Euclidean(sharmaSample, sharmaRef), 1e-12)
	require.InDelta(t, Manhattan(sharmaRef, sharmaSample), Manhattan(sharmaSample, sharmaRef), 1e-12)
}

func TestCIE76_SharmaPair(t *testing.T) {
	require.InDelta(t, 4.0011, CIE76(sharmaRef, sharmaSample), 1e-3)
}

func TestCIE94_SharmaPair(t *testing.T) {
	require.InDelta(t, 1.3950, CIE94(sharmaRef, sharmaSample), 1e-3)
}

func TestCIE94_NotSymmetric(t *testing.T) {
	// 加权系数只依赖参考色的彩度，交换参数结果不同
	require.NotEqual(t, CIE94(sharmaRef, sharmaSample), CIE94(sharmaSample, sharmaRef))
}

func TestCIE94_TextilesDiffers(t *testing.T) {
	gr := CIE94(sharmaRef, sharmaSample)
	tx := CIE94Textiles(sharmaRef, sharmaSample)

	require.NotEqual(t, gr, tx)
	require.Greater(t, tx, 0.0)
}

func TestCIEDE2000_IdenticalIsZero(t *testing.T) {
	c := colorspace.NewLab(42, -13, 55)

	require.Equal(t, 0.0, CIEDE2000(c, c))
}

func TestCIEDE2000_SharmaPair(t *testing.T) {
	require.InDelta(t, 2.0425, CIEDE2000(sharmaRef, sharmaSample), 1e-3)
}

func TestCIEDE2000_OrderIndependent(t *testing.T) {
	require.InDelta(t, CIEDE2000(sharmaRef, sharmaSample), CIEDE2000(sharmaSample, sharmaRef), 1e-9)
}

func TestCIEDE2000_NeutralAxis(t *testing.T) {
	// 无彩色对上 C′ 乘积为零，色相项不参与
	a := colorspace.NewLab(30, 0, 0)
	b := colorspace.NewLab(70, 0, 0)

	d := CIEDE2000(a, b)
	require.Greater(t, d, 0.0)
	require.InDelta(t, d, CIEDE2000(b, a), 1e-12)
}

func TestCIEDE2000_ParametricScalesDown(t *testing.T) {
	full := CIEDE2000(sharmaRef, sharmaSample)
	halved := CIEDE2000Parametric(sharmaRef, sharmaSample, 2.0, 2.0, 2.0)

	require.Less(t, halved, full)
}

func TestCMC_IdenticalIsZero(t *testing.T) {
	c := colorspace.NewLab(50, 10, -20)

	require.Equal(t, 0.0, CMC(c, c))
}

func TestCMC_AcceptabilityReducesLightnessTerm(t *testing.T) {
	a := colorspace.NewLab(30, 10, 10)
	b := colorspace.NewLab(50, 10, 10)

	// l=2 只缩小明度项
	require.Less(t, CMCAcceptability(a, b), CMC(a, b))
}

func TestDistance_AcceptsAnyModel(t *testing.T) {
	// 非 Lab 输入经 XYZ 中转后参与计算
	red := colorspace.NewRGB(colorspace.SRGB, 1, 0, 0)
	darkRed := colorspace.NewRGB(colorspace.SRGB, 0.8, 0, 0)

	require.Greater(t, CIEDE2000(red, darkRed), 0.0)
	require.Less(t, CIEDE2000(red, red), JND)
}
