package colorspace

import "github.com/weaming/colorlab/matrix"

// CAT 表示色适应变换 (Chromatic Adaptation Transform)
// 由一个固定 3x3 矩阵定义：先把三刺激值变换到锥响应空间，
// 按目标白 / 源白的逐通道比例缩放，再变换回三刺激值空间
type CAT struct {
	name string
	m    Matrix3x3
	inv  Matrix3x3
}

// NewCAT 创建色适应变换，逆矩阵预先计算一次
func NewCAT(name string, m Matrix3x3) CAT {
	return CAT{name: name, m: m, inv: m.MustInverse()}
}

// Name 返回变换名称
func (c CAT) Name() string {
	return c.name
}

// Matrix 返回 XYZ → 锥响应的变换矩阵
func (c CAT) Matrix() Matrix3x3 {
	return c.m
}

// Inverse 返回锥响应 → XYZ 的逆变换矩阵
func (c CAT) Inverse() Matrix3x3 {
	return c.inv
}

// Adapt 将三刺激值从源参考白适应到目标参考白
// 源白的某个锥响应通道为零时该通道比例按 1 处理，避免除零
func (c CAT) Adapt(color, sourceWhite, targetWhite Vector3) Vector3 {
	cone := c.m.Apply(color)
	sourceCone := c.m.Apply(sourceWhite)
	targetCone := c.m.Apply(targetWhite)

	for i := 0; i < 3; i++ {
		if sourceCone[i] != 0 {
			cone[i] *= targetCone[i] / sourceCone[i]
		}
	}

	return c.inv.Apply(cone)
}

func (c CAT) String() string {
	return c.name
}

// 常用色适应变换矩阵
var (
	// Bradford 变换，公认的通用最优选择，作为默认值
	Bradford = NewCAT("Bradford", Matrix3x3{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	})

	// VonKries 经典 Von Kries 变换
	VonKries = NewCAT("Von Kries", Matrix3x3{
		0.4002400, 0.7076000, -0.0808100,
		-0.2263000, 1.1653200, 0.0457000,
		0.0000000, 0.0000000, 0.9182200,
	})

	// CAT02 来自 CIECAM02 色貌模型
	CAT02 = NewCAT("CAT02", Matrix3x3{
		0.7328, 0.4296, -0.1624,
		-0.7036, 1.6975, 0.0061,
		0.0030, 0.0136, 0.9834,
	})

	// CAT16 来自 CAM16 色貌模型
	CAT16 = NewCAT("CAT16", Matrix3x3{
		0.401288, 0.650173, -0.051461,
		-0.250268, 1.204414, 0.045854,
		-0.002079, 0.048952, 0.953127,
	})

	// Sharp 锐化变换 (Süsstrunk 等)
	Sharp = NewCAT("Sharp", Matrix3x3{
		1.2694, -0.0988, -0.1706,
		-0.8364, 1.8006, 0.0357,
		0.0297, -0.0315, 1.0018,
	})

	// CMCCAT2000 CMC 2000 年版变换
	CMCCAT2000 = NewCAT("CMC CAT2000", Matrix3x3{
		0.7982, 0.3389, -0.1371,
		-0.5918, 1.5512, 0.0406,
		0.0008, 0.0239, 0.9753,
	})

	// HuntPointerEstevez Hunt-Pointer-Estévez 锥响应基
	HuntPointerEstevez = NewCAT("Hunt-Pointer-Estevez", Matrix3x3{
		0.38971, 0.68898, -0.07868,
		-0.22981, 1.18340, 0.04641,
		0.00000, 0.00000, 1.00000,
	})

	// Fairchild Fairchild 1990 变换
	Fairchild = NewCAT("Fairchild", Matrix3x3{
		0.8562, 0.3372, -0.1934,
		-0.8360, 1.8327, 0.0033,
		0.0357, -0.0469, 1.0112,
	})

	// XYZScaling 直接在 XYZ 空间缩放（单位矩阵），精度最差但最简单
	XYZScaling = CAT{name: "XYZ Scaling", m: matrix.Identity3x3(), inv: matrix.Identity3x3()}
)
