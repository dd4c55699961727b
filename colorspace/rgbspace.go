package colorspace

import (
	"fmt"
	"sync"

	"github.com/weaming/colorlab/matrix"
)

// Primaries 表示 RGB 色域三角形的三个基色色度坐标
type Primaries struct {
	R Xy
	G Xy
	B Xy
}

// XYZMatrix 由基色和参考白推导线性 RGB → XYZ 矩阵：
//  1. 把三个基色按 Y=1 展开为三刺激值，作为矩阵 P 的列
//  2. 解 P·s = W 得到各基色的缩放系数 s = P⁻¹·W
//  3. 结果为 P·diag(s)，保证 RGB(1,1,1) 精确映射到参考白
//
// 基色线性相关（色域三角形退化）时返回错误
func (p Primaries) XYZMatrix(white Vector3) (Matrix3x3, error) {
	r := p.R.Tristimulus(1.0)
	g := p.G.Tristimulus(1.0)
	b := p.B.Tristimulus(1.0)

	primary := Matrix3x3{
		r[0], g[0], b[0],
		r[1], g[1], b[1],
		r[2], g[2], b[2],
	}

	inv, err := primary.Inverse()
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("基色退化，无法推导 RGB→XYZ 矩阵: %w", err)
	}

	scaling := inv.Apply(white)

	return primary.Multiply(matrix.Diagonal(scaling)), nil
}

// RGBSpace 表示一个 RGB 色彩空间的完整定义：
// 基色、观察环境（决定参考白）和传递函数
// RGB↔XYZ 矩阵对在首次使用时推导一次并缓存，之后只读共享
type RGBSpace struct {
	Name      string
	Primaries Primaries
	Context   Context
	Transfer  Transfer

	once    sync.Once
	toXYZ   Matrix3x3
	fromXYZ Matrix3x3
}

// NewRGBSpace 创建自定义 RGB 空间，基色退化时返回错误
func NewRGBSpace(name string, primaries Primaries, ctx Context, transfer Transfer) (*RGBSpace, error) {
	// 提前推导一次以便把退化基色报告为错误而不是延迟 panic
	if _, err := primaries.XYZMatrix(ctx.ReferenceWhite()); err != nil {
		return nil, fmt.Errorf("色彩空间 %q 定义无效: %w", name, err)
	}

	return &RGBSpace{
		Name:      name,
		Primaries: primaries,
		Context:   ctx,
		Transfer:  transfer,
	}, nil
}

// derive 推导并缓存矩阵对，sync.Once 保证并发首次访问只计算一次
// 目录内空间的基色均已验证非退化，推导失败属于前置条件违反，直接 panic
func (s *RGBSpace) derive() {
	s.once.Do(func() {
		m, err := s.Primaries.XYZMatrix(s.Context.ReferenceWhite())
		if err != nil {
			panic(fmt.Sprintf("色彩空间 %q: %v", s.Name, err))
		}
		s.toXYZ = m
		s.fromXYZ = m.MustInverse()
	})
}

// XYZMatrix 返回线性 RGB → XYZ 矩阵（缓存）
func (s *RGBSpace) XYZMatrix() Matrix3x3 {
	s.derive()
	return s.toXYZ
}

// InverseXYZMatrix 返回 XYZ → 线性 RGB 矩阵（缓存）
func (s *RGBSpace) InverseXYZMatrix() Matrix3x3 {
	s.derive()
	return s.fromXYZ
}

func (s *RGBSpace) String() string {
	return s.Name
}
