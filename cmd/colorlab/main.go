package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/weaming/colorlab/cct"
	"github.com/weaming/colorlab/colorspace"
	"github.com/weaming/colorlab/config"
	"github.com/weaming/colorlab/contrast"
	"github.com/weaming/colorlab/distance"
)

// Version 程序版本
const Version = "0.1.0"

type cliConfig struct {
	Input      string
	To         string
	Space      string
	ConfigPath string
	Contrast   string
	CCT        bool
	PlotPath   string
	PlotSpaces string
	Verbose    bool
}

func main() {
	conf := parseFlags()

	if conf.Input == "" && conf.PlotPath == "" {
		fmt.Fprintln(os.Stderr, "错误: 必须指定一个颜色或使用 -plot")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(conf); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *cliConfig {
	conf := &cliConfig{}

	flag.StringVar(&conf.To, "to", "", "目标模型: hex, rgb, rgb8, hsv, hsl, hwb, hsi, cmy, cmyk, xyz, xyy, lab, lch, luv, oklab, oklch, okhsv, okhsl, okhwb（省略时输出全景）")
	flag.StringVar(&conf.Space, "space", "sRGB", "RGB 色彩空间（内置目录或配置文件中的名称）")
	flag.StringVar(&conf.ConfigPath, "config", "", "自定义光源/色彩空间配置文件 (TOML)")
	flag.StringVar(&conf.Contrast, "contrast", "", "第二个颜色：计算两色的 WCAG 对比度与色差")
	flag.BoolVar(&conf.CCT, "cct", false, "估算相关色温 (McCamy 与 Hernández-Andrés)")
	flag.StringVar(&conf.PlotPath, "plot", "", "把色域三角形渲染到 xy 色度图 PNG")
	flag.StringVar(&conf.PlotSpaces, "plot-spaces", "sRGB,Display P3,Rec. 2020", "色度图中绘制的空间，逗号分隔")
	flag.BoolVar(&conf.Verbose, "v", false, "详细输出")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "colorlab version %s\n", Version)
		fmt.Fprintf(os.Stderr, "\n色彩空间转换与检查工具\n\n")
		fmt.Fprintf(os.Stderr, "用法: colorlab [选项] <颜色>\n\n")
		fmt.Fprintf(os.Stderr, "颜色写法:\n")
		fmt.Fprintf(os.Stderr, "  #ff8000               十六进制 (sRGB)\n")
		fmt.Fprintf(os.Stderr, "  rgb(1.0, 0.5, 0.0)    模型(分量,...)，分量按 -space 解释\n")
		fmt.Fprintf(os.Stderr, "  lab(53.2, 80.1, 67.2) 设备无关模型不受 -space 影响\n\n")
		fmt.Fprintf(os.Stderr, "选项:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n示例:\n")
		fmt.Fprintf(os.Stderr, "  colorlab '#ff8000'\n")
		fmt.Fprintf(os.Stderr, "  colorlab -to oklch 'rgb(1, 0.5, 0)'\n")
		fmt.Fprintf(os.Stderr, "  colorlab -contrast '#767676' '#ffffff'\n")
		fmt.Fprintf(os.Stderr, "  colorlab -cct '#fff4e6'\n")
		fmt.Fprintf(os.Stderr, "  colorlab -plot gamut.png\n")
	}

	flag.Parse()

	if flag.NArg() > 0 {
		conf.Input = flag.Arg(0)
	}
	// -plot 单独使用时位置参数是输出路径的简写
	if conf.PlotPath == "" && conf.Input != "" && strings.HasSuffix(strings.ToLower(conf.Input), ".png") {
		conf.PlotPath = conf.Input
		conf.Input = ""
	}

	return conf
}

func run(conf *cliConfig) error {
	logger := NewLogger()

	lib := &config.Library{}
	if conf.ConfigPath != "" {
		if conf.Verbose {
			logger.Step("加载配置", conf.ConfigPath)
		}
		loaded, err := config.Load(conf.ConfigPath)
		if err != nil {
			return err
		}
		lib = loaded
		if conf.Verbose {
			logger.Done(fmt.Sprintf("光源 %d 个, 空间 %d 个", len(lib.Illuminants), len(lib.Spaces)))
		}
	}

	space, ok := lib.SpaceByName(conf.Space)
	if !ok {
		return fmt.Errorf("未知色彩空间: %s", conf.Space)
	}

	if conf.PlotPath != "" {
		if err := plotGamuts(conf.PlotPath, conf.PlotSpaces, lib, logger, conf.Verbose); err != nil {
			return err
		}
		if conf.Input == "" {
			if conf.Verbose {
				logger.Total()
			}
			return nil
		}
	}

	color, err := parseColor(conf.Input, space)
	if err != nil {
		return err
	}
	if conf.Verbose {
		logger.Info("空间: %s, 传递函数: %s", space.Name, space.Transfer)
	}

	switch {
	case conf.Contrast != "":
		var other colorspace.Color
		other, err = parseColor(conf.Contrast, space)
		if err != nil {
			return err
		}
		err = printContrast(color, other)
	case conf.CCT:
		printCCT(color)
	case conf.To != "":
		var out string
		out, err = formatAs(color, conf.To, space)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		err = printInspection(color, space, logger)
	}

	if err == nil && conf.Verbose {
		logger.Total()
	}
	return err
}

// printInspection 输出颜色在各主要模型下的全景视图
func printInspection(c colorspace.Color, space *colorspace.RGBSpace, logger *Logger) error {
	models := []string{
		"hex", "rgb8", "hsv", "hsl",
		"xyz", "xyy", "lab", "lch", "luv",
		"oklab", "oklch", "okhsv", "okhsl",
	}

	for _, m := range models {
		out, err := formatAs(c, m, space)
		if err != nil {
			return err
		}
		fmt.Printf("%-7s %s\n", m, out)
	}

	rgb := colorspace.RGBFromXYZ(c.ToXYZ(), space)
	if !rgb.InGamut() {
		logger.Warn("超出 %s 色域（上表 RGB 系数值已截断）", space.Name)
	}
	return nil
}

func printContrast(a, b colorspace.Color) error {
	ratio := contrast.WCAG(a, b)

	fmt.Printf("WCAG 对比度   %.2f:1\n", ratio.Value())
	fmt.Printf("  AA  正文 %s  大号 %s\n", passMark(ratio.MeetsAA()), passMark(ratio.MeetsAALargeText()))
	fmt.Printf("  AAA 正文 %s  大号 %s\n", passMark(ratio.MeetsAAA()), passMark(ratio.MeetsAAALargeText()))
	fmt.Printf("Michelson     %.4f\n", contrast.Michelson(a, b))
	fmt.Printf("ΔE*00         %.4f\n", distance.CIEDE2000(a, b))
	return nil
}

func passMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func printCCT(c colorspace.Color) {
	fmt.Printf("McCamy            %s (%.1f MRD)\n", cct.McCamy(c), cct.McCamy(c).MRD())
	fmt.Printf("Hernández-Andrés  %s (%.1f MRD)\n", cct.Hernandez(c), cct.Hernandez(c).MRD())
}
