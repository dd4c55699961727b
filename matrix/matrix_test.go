package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrix3x3_Multiply(t *testing.T) {
	a := Matrix3x3{1, 2, 3, 4, 5, 6, 7, 8, 9}

	require.Equal(t, a, a.Multiply(Identity3x3()))
	require.Equal(t, a, Identity3x3().Multiply(a))
}

func TestMatrix3x3_MultiplyNotCommutative(t *testing.T) {
	a := Matrix3x3{1, 2, 0, 0, 1, 0, 0, 0, 1}
	b := Matrix3x3{1, 0, 0, 3, 1, 0, 0, 0, 1}

	require.NotEqual(t, a.Multiply(b), b.Multiply(a))
}

func TestMatrix3x3_Apply(t *testing.T) {
	m := Diagonal(Vector3{1, 2, 3})
	v := m.Apply(Vector3{1, 1, 1})

	require.Equal(t, Vector3{1, 2, 3}, v)
}

func TestMatrix3x3_Determinant(t *testing.T) {
	require.InDelta(t, 1.0, Identity3x3().Determinant(), 1e-15)

	m := Matrix3x3{1, 2, 3, 0, 1, 4, 5, 6, 0}
	require.InDelta(t, 1.0, m.Determinant(), 1e-12)

	// 行线性相关，行列式为零
	singular := Matrix3x3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.InDelta(t, 0.0, singular.Determinant(), 1e-12)
}

func TestMatrix3x3_Inverse(t *testing.T) {
	m := Matrix3x3{1, 2, 3, 0, 1, 4, 5, 6, 0}

	inv, err := m.Inverse()
	require.NoError(t, err)

	product := m.Multiply(inv)
	identity := Identity3x3()
	for i := 0; i < 9; i++ {
		require.InDelta(t, identity[i], product[i], 1e-10)
	}
}

func TestMatrix3x3_InverseRoundTrip(t *testing.T) {
	m := Matrix3x3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}

	inv, err := m.Inverse()
	require.NoError(t, err)

	back, err := inv.Inverse()
	require.NoError(t, err)

	for i := 0; i < 9; i++ {
		require.InDelta(t, m[i], back[i], 1e-10)
	}
}

func TestMatrix3x3_InverseSingular(t *testing.T) {
	singular := Matrix3x3{1, 2, 3, 4, 5, 6, 7, 8, 9}

	_, err := singular.Inverse()
	require.Error(t, err)
}

func TestMatrix3x3_Transpose(t *testing.T) {
	m := Matrix3x3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	expected := Matrix3x3{1, 4, 7, 2, 5, 8, 3, 6, 9}

	require.Equal(t, expected, m.Transpose())
	require.Equal(t, m, m.Transpose().Transpose())
}

func TestVector3_Ops(t *testing.T) {
	v := Vector3{1, 2, 3}

	require.Equal(t, Vector3{2, 4, 6}, v.Scaled(2))
	require.Equal(t, Vector3{2, 4, 6}, v.Add(v))
	require.Equal(t, Vector3{0, 0, 0}, v.Sub(v))
	require.Equal(t, Vector3{1, 4, 9}, v.MulElem(v))
	require.Equal(t, 3.0, v.Max())
}
