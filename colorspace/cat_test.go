package colorspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// CAT 的基本性质：源白经适应应精确映射到目标白
func TestCAT_MapsSourceWhiteToTargetWhite(t *testing.T) {
	d65 := IlluminantD65.White(Observer1931)
	d50 := IlluminantD50.White(Observer1931)

	for _, cat := range []CAT{Bradford, VonKries, CAT02, CAT16, Sharp, CMCCAT2000, HuntPointerEstevez, Fairchild, XYZScaling} {
		t.Run(cat.Name(), func(t *testing.T) {
			adapted := cat.Adapt(d65, d65, d50)

			require.InDelta(t, d50[0], adapted[0], 1e-9)
			require.InDelta(t, d50[1], adapted[1], 1e-9)
			require.InDelta(t, d50[2], adapted[2], 1e-9)
		})
	}
}

func TestCAT_RoundTrip(t *testing.T) {
	d65 := IlluminantD65.White(Observer1931)
	d50 := IlluminantD50.White(Observer1931)
	color := Vector3{0.3, 0.4, 0.5}

	forward := Bradford.Adapt(color, d65, d50)
	back := Bradford.Adapt(forward, d50, d65)

	require.InDelta(t, color[0], back[0], 1e-8)
	require.InDelta(t, color[1], back[1], 1e-8)
	require.InDelta(t, color[2], back[2], 1e-8)
}

func TestCAT_SameWhiteIsIdentity(t *testing.T) {
	d65 := IlluminantD65.White(Observer1931)
	color := Vector3{0.3, 0.4, 0.5}

	adapted := Bradford.Adapt(color, d65, d65)
	require.InDelta(t, color[0], adapted[0], 1e-12)
	require.InDelta(t, color[1], adapted[1], 1e-12)
	require.InDelta(t, color[2], adapted[2], 1e-12)
}

func TestXYZ_AdaptToSameWhiteOnlyRelabels(t *testing.T) {
	xyz := NewXYZ(0.3, 0.4, 0.5)

	// 参考白相同、仅换 CAT 时分量应逐位不变
	target := DefaultContext().WithCAT(CAT02)
	adapted := xyz.AdaptTo(target)

	require.Equal(t, xyz.X, adapted.X)
	require.Equal(t, xyz.Y, adapted.Y)
	require.Equal(t, xyz.Z, adapted.Z)
	require.Equal(t, CAT02, adapted.Context().CAT)
}

func TestXYZ_AdaptToRoundTrip(t *testing.T) {
	ctxD65 := DefaultContext()
	ctxD50 := ctxD65.WithIlluminant(IlluminantD50)

	xyz := NewXYZ(0.3, 0.4, 0.5)
	back := xyz.AdaptTo(ctxD50).AdaptTo(ctxD65)

	require.InDelta(t, xyz.X, back.X, 1e-8)
	require.InDelta(t, xyz.Y, back.Y, 1e-8)
	require.InDelta(t, xyz.Z, back.Z, 1e-8)
}

func TestXYZ_AdaptToCustomIlluminant(t *testing.T) {
	warm := NewIlluminant("暖白灯", Vector3{1.02, 1.0, 0.60})
	ctx := DefaultContext().WithIlluminant(warm)

	xyz := NewXYZ(0.42, 0.37, 0.28)
	back := xyz.AdaptTo(ctx).AdaptTo(DefaultContext())

	require.InDelta(t, xyz.X, back.X, 1e-6)
	require.InDelta(t, xyz.Y, back.Y, 1e-6)
	require.InDelta(t, xyz.Z, back.Z, 1e-6)
}

func TestXYZ_ToLMSRoundTrip(t *testing.T) {
	xyz := NewXYZ(0.3, 0.4, 0.5)

	lms := xyz.ToLMS()
	back := lms.ToXYZ()

	require.InDelta(t, xyz.X, back.X, 1e-10)
	require.InDelta(t, xyz.Y, back.Y, 1e-10)
	require.InDelta(t, xyz.Z, back.Z, 1e-10)
}

func TestIlluminant_ObserverWhites(t *testing.T) {
	// 2° 与 10° 观察者的参考白不同
	w2 := IlluminantD65.White(Observer1931)
	w10 := IlluminantD65.White(Observer1964)

	require.InDelta(t, 0.95047, w2[0], 1e-5)
	require.NotEqual(t, w2[0], w10[0])
}

func TestIlluminantByName(t *testing.T) {
	ill, ok := IlluminantByName("D50")
	require.True(t, ok)
	require.Equal(t, IlluminantD50, ill)

	_, ok = IlluminantByName("Z99")
	require.False(t, ok)
}
