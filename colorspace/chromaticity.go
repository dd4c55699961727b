package colorspace

// Xy 表示 CIE 1931 色度图上的一个点 (x, y)
// 用于定义 RGB 基色和参考白点，构造后不再修改
type Xy struct {
	X float64
	Y float64
}

// Tristimulus 按给定亮度 Y 展开为三刺激值 (X, Y, Z)
// y 为零时返回零向量，避免除零
func (c Xy) Tristimulus(luminance float64) Vector3 {
	if c.Y == 0 {
		return Vector3{0, 0, 0}
	}

	return Vector3{
		(c.X / c.Y) * luminance,
		luminance,
		((1.0 - c.X - c.Y) / c.Y) * luminance,
	}
}

// XyFromTristimulus 从三刺激值计算色度坐标
// 三分量之和为零时返回 (0, 0)
func XyFromTristimulus(v Vector3) Xy {
	sum := v[0] + v[1] + v[2]
	if sum == 0 {
		return Xy{}
	}

	return Xy{X: v[0] / sum, Y: v[1] / sum}
}
