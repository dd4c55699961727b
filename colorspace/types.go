package colorspace

import "github.com/weaming/colorlab/matrix"

// Vector3 是 matrix.Vector3 的别名，表示三刺激值等三分量数据
type Vector3 = matrix.Vector3

// Matrix3x3 是 matrix.Matrix3x3 的别名
type Matrix3x3 = matrix.Matrix3x3
