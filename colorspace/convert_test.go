package colorspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransfer_SRGBRoundTrip(t *testing.T) {
	tr := Transfer{Kind: TransferSRGB}

	for i := 0; i <= 100; i++ {
		v := float64(i) / 100.0
		require.InDelta(t, v, tr.Decode(tr.Encode(v)), 1e-12)
		require.InDelta(t, v, tr.Encode(tr.Decode(v)), 1e-12)
	}
}

func TestTransfer_SRGBThresholdContinuity(t *testing.T) {
	tr := Transfer{Kind: TransferSRGB}

	below := tr.Encode(0.0031308 - 1e-9)
	above := tr.Encode(0.0031308 + 1e-9)
	require.InDelta(t, below, above, 1e-6)
}

func TestTransfer_SRGBKnownValues(t *testing.T) {
	tr := Transfer{Kind: TransferSRGB}

	require.InDelta(t, 0.0, tr.Decode(0.0), 1e-15)
	require.InDelta(t, 1.0, tr.Decode(1.0), 1e-12)
	// 中灰 0.5 编码对应约 21.4% 线性光
	require.InDelta(t, 0.2140411, tr.Decode(0.5), 1e-6)
}

func TestTransfer_BT709RoundTrip(t *testing.T) {
	tr := Transfer{Kind: TransferBT709}

	for i := 0; i <= 100; i++ {
		v := float64(i) / 100.0
		require.InDelta(t, v, tr.Decode(tr.Encode(v)), 1e-12)
	}
}

func TestTransfer_ProPhotoRoundTrip(t *testing.T) {
	tr := Transfer{Kind: TransferProPhoto}

	for i := 0; i <= 100; i++ {
		v := float64(i) / 100.0
		require.InDelta(t, v, tr.Decode(tr.Encode(v)), 1e-12)
	}
}

func TestTransfer_GammaRoundTrip(t *testing.T) {
	tr := GammaTransfer(2.19921875)

	for i := 0; i <= 100; i++ {
		v := float64(i) / 100.0
		require.InDelta(t, v, tr.Decode(tr.Encode(v)), 1e-12)
	}
}

func TestTransfer_GammaNegativeOddSymmetry(t *testing.T) {
	tr := GammaTransfer(2.2)

	require.InDelta(t, -tr.Decode(0.5), tr.Decode(-0.5), 1e-15)
	require.InDelta(t, -tr.Encode(0.5), tr.Encode(-0.5), 1e-15)
}

func TestTransfer_LinearIdentity(t *testing.T) {
	tr := LinearTransfer()

	require.Equal(t, 0.42, tr.Encode(0.42))
	require.Equal(t, 0.42, tr.Decode(0.42))
}

func TestTransfer_PQ(t *testing.T) {
	tr := Transfer{Kind: TransferPQ}

	// 满码值对应 10000 cd/m²
	require.InDelta(t, 10000.0, tr.Decode(1.0), 1e-6)
	require.InDelta(t, 0.0, tr.Decode(0.0), 1e-9)

	for _, nits := range []float64{0.01, 0.1, 1, 100, 1000, 10000} {
		require.InDelta(t, nits, tr.Decode(tr.Encode(nits)), nits*1e-9)
	}
}

func TestTransfer_HLGRoundTrip(t *testing.T) {
	tr := Transfer{Kind: TransferHLG}

	for i := 1; i <= 100; i++ {
		v := float64(i) / 100.0
		require.InDelta(t, v, tr.Decode(tr.Encode(v)), 1e-9)
	}

	// 分段点连续
	require.InDelta(t, 0.5, tr.Encode(1.0/12.0), 1e-12)
}

func TestTransfer_String(t *testing.T) {
	require.Equal(t, "sRGB", Transfer{Kind: TransferSRGB}.String())
	require.Equal(t, "Linear", LinearTransfer().String())
	require.Equal(t, "Gamma 1.80", GammaTransfer(1.8).String())
}
