// Package cct 估算相关色温（CCT）：
// 给定颜色在 CIE 1931 色度图上的坐标，求普朗克轨迹上感知最近的黑体温度
// 提供 McCamy 多项式与 Hernández-Andrés 指数两种近似
package cct

import "fmt"

// ColorTemperature 表示一个相关色温，单位开尔文
type ColorTemperature float64

// Kelvin 返回色温值（K）
func (t ColorTemperature) Kelvin() float64 {
	return float64(t)
}

// MRD 返回微倒度（mired，1e6/K）
// 在微倒度尺度上相等的间隔近似感知均匀，常用于滤镜换算
func (t ColorTemperature) MRD() float64 {
	return 1e6 / float64(t)
}

func (t ColorTemperature) String() string {
	return fmt.Sprintf("%.0fK", float64(t))
}
