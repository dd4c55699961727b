package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/weaming/colorlab/colorspace"
)

// parseColor 解析命令行颜色表示
// 支持十六进制（#rrggbb 及变体）和 模型(分量,...) 两种写法
// RGB 系模型的分量按 space 给定的空间解释
func parseColor(s string, space *colorspace.RGBSpace) (colorspace.Color, error) {
	s = strings.TrimSpace(s)

	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		rgb, err := colorspace.ParseHex(s)
		if err != nil {
			return nil, err
		}
		if space != colorspace.SRGB {
			// 十六进制约定为 sRGB 编码，需要时转到目标空间
			return rgb.To(space), nil
		}
		return rgb, nil
	}

	model := strings.ToLower(strings.TrimSpace(s[:open]))
	parts, err := parseComponents(s[open+1 : len(s)-1])
	if err != nil {
		return nil, fmt.Errorf("颜色 %q 无效: %w", s, err)
	}

	need := 3
	if model == "cmyk" {
		need = 4
	}
	if len(parts) != need {
		return nil, fmt.Errorf("模型 %s 需要 %d 个分量，实际 %d 个", model, need, len(parts))
	}

	a, b, c := parts[0], parts[1], parts[2]
	switch model {
	case "rgb":
		return colorspace.NewRGB(space, a, b, c), nil
	case "rgb8":
		return colorspace.NewRGB(space, a/255.0, b/255.0, c/255.0), nil
	case "hsv":
		return colorspace.NewHSV(space, a, b, c), nil
	case "hsl":
		return colorspace.NewHSL(space, a, b, c), nil
	case "hwb":
		return colorspace.NewHWB(space, a, b, c), nil
	case "hsi":
		return colorspace.NewHSI(space, a, b, c), nil
	case "cmy":
		return colorspace.NewCMY(space, a, b, c), nil
	case "cmyk":
		return colorspace.NewCMYK(space, a, b, c, parts[3]), nil
	case "xyz":
		return colorspace.NewXYZ(a, b, c), nil
	case "xyy":
		return colorspace.NewXyY(a, b, c), nil
	case "lab":
		return colorspace.NewLab(a, b, c), nil
	case "lch":
		return colorspace.NewLCh(a, b, c), nil
	case "luv":
		return colorspace.NewLuv(a, b, c), nil
	case "oklab":
		return colorspace.NewOklab(a, b, c), nil
	case "oklch":
		return colorspace.NewOklch(a, b, c), nil
	case "okhsv":
		return colorspace.NewOkhsv(a, b, c), nil
	case "okhsl":
		return colorspace.NewOkhsl(a, b, c), nil
	case "okhwb":
		return colorspace.NewOkhwb(a, b, c), nil
	default:
		return nil, fmt.Errorf("未知颜色模型: %s", model)
	}
}

func parseComponents(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("分量 %q 不是数字", strings.TrimSpace(f))
		}
		out = append(out, v)
	}
	return out, nil
}

// formatAs 把颜色格式化为指定模型的文本表示
func formatAs(c colorspace.Color, model string, space *colorspace.RGBSpace) (string, error) {
	xyz := c.ToXYZ()

	switch strings.ToLower(model) {
	case "hex":
		return colorspace.RGBFromXYZ(xyz, space).Clamped().Hex(), nil
	case "rgb":
		v := colorspace.RGBFromXYZ(xyz, space)
		return fmt.Sprintf("rgb(%.4f, %.4f, %.4f)", v.R, v.G, v.B), nil
	case "rgb8":
		r, g, b := colorspace.RGBFromXYZ(xyz, space).Bytes()
		return fmt.Sprintf("rgb8(%d, %d, %d)", r, g, b), nil
	case "hsv":
		v := colorspace.RGBFromXYZ(xyz, space).ToHSV()
		return fmt.Sprintf("hsv(%.1f°, %.4f, %.4f)", v.H, v.S, v.V), nil
	case "hsl":
		v := colorspace.RGBFromXYZ(xyz, space).ToHSL()
		return fmt.Sprintf("hsl(%.1f°, %.4f, %.4f)", v.H, v.S, v.L), nil
	case "hwb":
		v := colorspace.RGBFromXYZ(xyz, space).ToHWB()
		return fmt.Sprintf("hwb(%.1f°, %.4f, %.4f)", v.H, v.W, v.B), nil
	case "hsi":
		v := colorspace.RGBFromXYZ(xyz, space).ToHSI()
		return fmt.Sprintf("hsi(%.1f°, %.4f, %.4f)", v.H, v.S, v.I), nil
	case "cmy":
		v := colorspace.RGBFromXYZ(xyz, space).ToCMY()
		return fmt.Sprintf("cmy(%.4f, %.4f, %.4f)", v.C, v.M, v.Y), nil
	case "cmyk":
		v := colorspace.RGBFromXYZ(xyz, space).ToCMYK()
		return fmt.Sprintf("cmyk(%.4f, %.4f, %.4f, %.4f)", v.C, v.M, v.Y, v.K), nil
	case "xyz":
		return fmt.Sprintf("xyz(%.6f, %.6f, %.6f)", xyz.X, xyz.Y, xyz.Z), nil
	case "xyy":
		v := colorspace.XyYFromXYZ(xyz)
		return fmt.Sprintf("xyy(%.6f, %.6f, %.6f)", v.X, v.Y, v.Lum), nil
	case "lab":
		v := colorspace.LabFromXYZ(xyz)
		return fmt.Sprintf("lab(%.4f, %.4f, %.4f)", v.L, v.A, v.B), nil
	case "lch":
		v := colorspace.LChFromXYZ(xyz)
		return fmt.Sprintf("lch(%.4f, %.4f, %.1f°)", v.L, v.C, v.H), nil
	case "luv":
		v := colorspace.LuvFromXYZ(xyz)
		return fmt.Sprintf("luv(%.4f, %.4f, %.4f)", v.L, v.U, v.V), nil
	case "oklab":
		v := colorspace.OklabFromXYZ(xyz)
		return fmt.Sprintf("oklab(%.6f, %.6f, %.6f)", v.L, v.A, v.B), nil
	case "oklch":
		v := colorspace.OklchFromXYZ(xyz)
		return fmt.Sprintf("oklch(%.6f, %.6f, %.1f°)", v.L, v.C, v.H), nil
	case "okhsv":
		v := colorspace.OkhsvFromXYZ(xyz)
		return fmt.Sprintf("okhsv(%.1f°, %.4f, %.4f)", v.H, v.S, v.V), nil
	case "okhsl":
		v := colorspace.OkhslFromXYZ(xyz)
		return fmt.Sprintf("okhsl(%.1f°, %.4f, %.4f)", v.H, v.S, v.L), nil
	case "okhwb":
		v := colorspace.OkhwbFromXYZ(xyz)
		return fmt.Sprintf("okhwb(%.1f°, %.4f, %.4f)", v.H, v.W, v.B), nil
	default:
		return "", fmt.Errorf("未知颜色模型: %s", model)
	}
}
