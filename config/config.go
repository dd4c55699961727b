// Package config 从 TOML 文件加载用户自定义的光源和 RGB 色彩空间
//
// 文件格式：
//
//	[[illuminant]]
//	name  = "暖白灯"
//	white = [1.02, 1.0, 0.60]
//
//	[[space]]
//	name       = "MyWideRGB"
//	illuminant = "D65"      # 标准光源名，或本文件中定义的自定义光源
//	observer   = "2"        # "2" 或 "10"，省略时取 2°
//	cat        = "Bradford" # 省略时取 Bradford
//	transfer   = "gamma"    # linear/gamma/srgb/bt709/prophoto/pq/hlg
//	gamma      = 2.2        # 仅 transfer = "gamma" 时使用
//	[space.primaries]
//	r = [0.64, 0.33]
//	g = [0.30, 0.60]
//	b = [0.15, 0.06]
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/weaming/colorlab/colorspace"
)

// Library 是一次加载得到的自定义光源和色彩空间集合
type Library struct {
	Illuminants []colorspace.Illuminant
	Spaces      []*colorspace.RGBSpace
}

// IlluminantByName 先查本库的自定义光源，再回退到标准光源目录
func (l *Library) IlluminantByName(name string) (colorspace.Illuminant, bool) {
	for _, i := range l.Illuminants {
		if i.Name() == name {
			return i, true
		}
	}
	return colorspace.IlluminantByName(name)
}

// SpaceByName 先查本库的自定义空间，再回退到内置空间目录
func (l *Library) SpaceByName(name string) (*colorspace.RGBSpace, bool) {
	for _, s := range l.Spaces {
		if s.Name == name {
			return s, true
		}
	}
	return colorspace.SpaceByName(name)
}

type fileData struct {
	Illuminant []illuminantData
	Space      []spaceData
}

type illuminantData struct {
	Name  string
	White []float64
}

type spaceData struct {
	Name       string
	Illuminant string
	Observer   string
	CAT        string
	Transfer   string
	Gamma      float64
	Primaries  primariesData
}

type primariesData struct {
	R []float64
	G []float64
	B []float64
}

// Load 读取并解析一个 TOML 配置文件
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "读取配置文件失败")
	}
	return Decode(string(data))
}

// Decode 解析 TOML 配置文本
// 自定义空间可以引用同一文件中定义的自定义光源
func Decode(text string) (*Library, error) {
	var raw fileData
	if _, err := toml.Decode(text, &raw); err != nil {
		return nil, errors.Wrap(err, "解析 TOML 失败")
	}

	lib := &Library{}

	for _, d := range raw.Illuminant {
		ill, err := buildIlluminant(d)
		if err != nil {
			return nil, errors.Wrapf(err, "光源 %q 定义无效", d.Name)
		}
		lib.Illuminants = append(lib.Illuminants, ill)
	}

	for _, d := range raw.Space {
		space, err := buildSpace(d, lib)
		if err != nil {
			return nil, errors.Wrapf(err, "色彩空间 %q 定义无效", d.Name)
		}
		lib.Spaces = append(lib.Spaces, space)
	}

	return lib, nil
}

func buildIlluminant(d illuminantData) (colorspace.Illuminant, error) {
	if d.Name == "" {
		return colorspace.Illuminant{}, errors.New("缺少 name")
	}
	if len(d.White) != 3 {
		return colorspace.Illuminant{}, errors.Errorf("white 需要 3 个分量，实际 %d 个", len(d.White))
	}
	if d.White[1] <= 0 {
		return colorspace.Illuminant{}, errors.New("参考白的 Y 分量必须为正")
	}

	white := colorspace.Vector3{d.White[0], d.White[1], d.White[2]}
	return colorspace.NewIlluminant(d.Name, white), nil
}

func buildSpace(d spaceData, lib *Library) (*colorspace.RGBSpace, error) {
	if d.Name == "" {
		return nil, errors.New("缺少 name")
	}

	primaries, err := buildPrimaries(d.Primaries)
	if err != nil {
		return nil, err
	}

	ctx := colorspace.DefaultContext()
	if d.Illuminant != "" {
		ill, ok := lib.IlluminantByName(d.Illuminant)
		if !ok {
			return nil, errors.Errorf("未知光源 %q", d.Illuminant)
		}
		ctx = ctx.WithIlluminant(ill)
	}

	switch d.Observer {
	case "", "2":
		// 默认 2° 观察者
	case "10":
		ctx = ctx.WithObserver(colorspace.Observer1964)
	default:
		return nil, errors.Errorf("未知观察者 %q（只支持 \"2\" 和 \"10\"）", d.Observer)
	}

	if d.CAT != "" {
		cat, ok := catByName(d.CAT)
		if !ok {
			return nil, errors.Errorf("未知色适应变换 %q", d.CAT)
		}
		ctx = ctx.WithCAT(cat)
	}

	transfer, err := buildTransfer(d)
	if err != nil {
		return nil, err
	}

	space, err := colorspace.NewRGBSpace(d.Name, primaries, ctx, transfer)
	if err != nil {
		return nil, errors.Wrap(err, "推导转换矩阵失败")
	}
	return space, nil
}

func buildPrimaries(d primariesData) (colorspace.Primaries, error) {
	r, err := xyPair("r", d.R)
	if err != nil {
		return colorspace.Primaries{}, err
	}
	g, err := xyPair("g", d.G)
	if err != nil {
		return colorspace.Primaries{}, err
	}
	b, err := xyPair("b", d.B)
	if err != nil {
		return colorspace.Primaries{}, err
	}
	return colorspace.Primaries{R: r, G: g, B: b}, nil
}

func xyPair(field string, v []float64) (colorspace.Xy, error) {
	if len(v) != 2 {
		return colorspace.Xy{}, errors.Errorf("基色 %s 需要 2 个色度坐标，实际 %d 个", field, len(v))
	}
	return colorspace.Xy{X: v[0], Y: v[1]}, nil
}

func buildTransfer(d spaceData) (colorspace.Transfer, error) {
	switch strings.ToLower(d.Transfer) {
	case "", "linear":
		return colorspace.LinearTransfer(), nil
	case "gamma":
		if d.Gamma <= 0 {
			return colorspace.Transfer{}, errors.New("transfer = \"gamma\" 时必须给出正的 gamma 值")
		}
		return colorspace.GammaTransfer(d.Gamma), nil
	case "srgb":
		return colorspace.Transfer{Kind: colorspace.TransferSRGB}, nil
	case "bt709":
		return colorspace.Transfer{Kind: colorspace.TransferBT709}, nil
	case "prophoto":
		return colorspace.Transfer{Kind: colorspace.TransferProPhoto}, nil
	case "pq":
		return colorspace.Transfer{Kind: colorspace.TransferPQ}, nil
	case "hlg":
		return colorspace.Transfer{Kind: colorspace.TransferHLG}, nil
	default:
		return colorspace.Transfer{}, errors.Errorf("未知传递函数 %q", d.Transfer)
	}
}

func catByName(name string) (colorspace.CAT, bool) {
	for _, c := range []colorspace.CAT{
		colorspace.Bradford, colorspace.VonKries, colorspace.CAT02, colorspace.CAT16,
		colorspace.Sharp, colorspace.CMCCAT2000, colorspace.HuntPointerEstevez, colorspace.Fairchild,
		colorspace.XYZScaling,
	} {
		if c.Name() == name {
			return c, true
		}
	}
	return colorspace.CAT{}, false
}
