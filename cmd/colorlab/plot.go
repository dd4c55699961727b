package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/weaming/colorlab/colorspace"
	"github.com/weaming/colorlab/config"
)

// 色域三角形的描边颜色，按空间顺序循环使用
var plotPalette = []color.RGBA{
	{R: 220, G: 50, B: 47, A: 255},
	{R: 38, G: 139, B: 210, A: 255},
	{R: 133, G: 153, B: 0, A: 255},
	{R: 181, G: 137, B: 0, A: 255},
	{R: 108, G: 113, B: 196, A: 255},
	{R: 42, G: 161, B: 152, A: 255},
}

// plotGamuts 把若干 RGB 空间的色域三角形和白点画到 CIE 1931 xy 色度图上
func plotGamuts(path, spaceList string, lib *config.Library, logger *Logger, verbose bool) error {
	if verbose {
		logger.Step("渲染色度图", path)
	}

	p := plot.New()
	p.Title.Text = "CIE 1931 色度图"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = 0, 0.8
	p.Y.Min, p.Y.Max = 0, 0.9
	p.Add(plotter.NewGrid())

	names := strings.Split(spaceList, ",")
	for i, name := range names {
		name = strings.TrimSpace(name)
		space, ok := lib.SpaceByName(name)
		if !ok {
			return fmt.Errorf("未知色彩空间: %s", name)
		}

		line, err := plotter.NewLine(trianglePoints(space.Primaries))
		if err != nil {
			return fmt.Errorf("构造色域三角形失败: %w", err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotPalette[i%len(plotPalette)]
		p.Add(line)
		p.Legend.Add(space.Name, line)

		white, err := plotter.NewScatter(whitePoint(space))
		if err != nil {
			return fmt.Errorf("构造白点失败: %w", err)
		}
		white.GlyphStyle.Radius = vg.Points(2.5)
		white.GlyphStyle.Color = plotPalette[i%len(plotPalette)]
		p.Add(white)
	}

	c := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(18*vg.Centimeter, 18*vg.Centimeter),
	)}
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建输出文件失败: %w", err)
	}
	defer f.Close()

	if _, err := c.WriteTo(f); err != nil {
		return fmt.Errorf("写入 PNG 失败: %w", err)
	}

	if verbose {
		logger.Done(fmt.Sprintf("%d 个空间", len(names)))
	}
	return nil
}

// trianglePoints 返回闭合的色域三角形顶点序列 R→G→B→R
func trianglePoints(p colorspace.Primaries) plotter.XYs {
	corners := []colorspace.Xy{p.R, p.G, p.B, p.R}
	pts := make(plotter.XYs, len(corners))
	for i, c := range corners {
		pts[i].X = c.X
		pts[i].Y = c.Y
	}
	return pts
}

func whitePoint(s *colorspace.RGBSpace) plotter.XYs {
	xy := colorspace.XyFromTristimulus(s.Context.ReferenceWhite())
	return plotter.XYs{{X: xy.X, Y: xy.Y}}
}
