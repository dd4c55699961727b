package matrix

import (
	"fmt"
	"math"
)

// Matrix3x3 表示 3x3 矩阵（行优先存储）
type Matrix3x3 [9]float64

// Vector3 表示 3 维向量
type Vector3 [3]float64

// 行列式接近零时认为矩阵奇异，不可求逆
const singularEpsilon = 1e-12

// Identity3x3 返回 3x3 单位矩阵
func Identity3x3() Matrix3x3 {
	return Matrix3x3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Diagonal 返回以 v 为对角线的 3x3 对角矩阵
func Diagonal(v Vector3) Matrix3x3 {
	return Matrix3x3{
		v[0], 0, 0,
		0, v[1], 0,
		0, 0, v[2],
	}
}

// Multiply 矩阵乘法 (m * other)，顺序不可交换
func (m Matrix3x3) Multiply(other Matrix3x3) Matrix3x3 {
	var result Matrix3x3

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i*3+k] * other[k*3+j]
			}
			result[i*3+j] = sum
		}
	}

	return result
}

// Apply 应用矩阵到向量 (matrix * vector)
func (m Matrix3x3) Apply(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Determinant 计算矩阵的行列式
func (m Matrix3x3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse 计算矩阵的逆（伴随矩阵 / 行列式）
// 矩阵奇异时返回错误
func (m Matrix3x3) Inverse() (Matrix3x3, error) {
	det := m.Determinant()
	if math.Abs(det) < singularEpsilon {
		return Matrix3x3{}, fmt.Errorf("矩阵奇异，无法求逆 (行列式 = %g)", det)
	}

	invDet := 1.0 / det

	var inv Matrix3x3
	inv[0] = (m[4]*m[8] - m[5]*m[7]) * invDet
	inv[1] = (m[2]*m[7] - m[1]*m[8]) * invDet
	inv[2] = (m[1]*m[5] - m[2]*m[4]) * invDet
	inv[3] = (m[5]*m[6] - m[3]*m[8]) * invDet
	inv[4] = (m[0]*m[8] - m[2]*m[6]) * invDet
	inv[5] = (m[2]*m[3] - m[0]*m[5]) * invDet
	inv[6] = (m[3]*m[7] - m[4]*m[6]) * invDet
	inv[7] = (m[1]*m[6] - m[0]*m[7]) * invDet
	inv[8] = (m[0]*m[4] - m[1]*m[3]) * invDet

	return inv, nil
}

// MustInverse 计算矩阵的逆，奇异时 panic
// 仅用于已知非退化的常量矩阵（如 CAT 矩阵、目录内色彩空间的基色矩阵）
func (m Matrix3x3) MustInverse() Matrix3x3 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// Transpose 返回转置矩阵
func (m Matrix3x3) Transpose() Matrix3x3 {
	return Matrix3x3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Scaled 返回所有元素乘以 factor 的新矩阵
func (m Matrix3x3) Scaled(factor float64) Matrix3x3 {
	var result Matrix3x3
	for i, v := range m {
		result[i] = v * factor
	}
	return result
}

// String 以固定精度格式化矩阵，便于调试输出
func (m Matrix3x3) String() string {
	return fmt.Sprintf("[\n  [%.7f, %.7f, %.7f],\n  [%.7f, %.7f, %.7f],\n  [%.7f, %.7f, %.7f]\n]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Scaled 返回所有分量乘以 factor 的新向量
func (v Vector3) Scaled(factor float64) Vector3 {
	return Vector3{v[0] * factor, v[1] * factor, v[2] * factor}
}

// Add 向量加法
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub 向量减法
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// MulElem 向量逐分量相乘
func (v Vector3) MulElem(other Vector3) Vector3 {
	return Vector3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// Max 返回最大分量
func (v Vector3) Max() float64 {
	return math.Max(v[0], math.Max(v[1], v[2]))
}
