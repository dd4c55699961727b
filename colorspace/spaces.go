package colorspace

// 标准 RGB 色彩空间目录
// 每个空间由基色色度、观察环境和传递函数定义，
// RGB↔XYZ 矩阵在首次使用时由 rgbspace.go 推导并缓存

// 电影/特殊白点，由白点色度按 Y=1 展开
var (
	// IlluminantDCI DCI 影院白点 (x=0.314, y=0.351)
	IlluminantDCI = NewIlluminant("DCI", Vector3{0.89458689, 1.0, 0.95441595})
	// IlluminantACES ACES 白点 (x=0.32168, y=0.33767)，接近 D60
	IlluminantACES = NewIlluminant("ACES", Vector3{0.95264607, 1.0, 1.00882518})
)

func ctx2(i Illuminant) Context {
	return Context{Illuminant: i, Observer: Observer1931, CAT: Bradford}
}

var (
	// SRGB IEC 61966-2-1 标准空间，显示和网络内容的默认空间
	SRGB = &RGBSpace{
		Name:      "sRGB",
		Primaries: Primaries{R: Xy{0.64, 0.33}, G: Xy{0.30, 0.60}, B: Xy{0.15, 0.06}},
		Context:   ctx2(IlluminantD65),
		Transfer:  Transfer{Kind: TransferSRGB},
	}

	// LinearSRGB sRGB 基色 + 线性传递函数
	LinearSRGB = &RGBSpace{
		Name:      "Linear sRGB",
		Primaries: Primaries{R: Xy{0.64, 0.33}, G: Xy{0.30, 0.60}, B: Xy{0.15, 0.06}},
		Context:   ctx2(IlluminantD65),
		Transfer:  LinearTransfer(),
	}

	// AdobeRGB Adobe RGB (1998)
	AdobeRGB = &RGBSpace{
		Name:      "Adobe RGB (1998)",
		Primaries: Primaries{R: Xy{0.6400, 0.3300}, G: Xy{0.2100, 0.7100}, B: Xy{0.1500, 0.0600}},
		Context:   ctx2(IlluminantD65),
		Transfer:  GammaTransfer(2.19921875),
	}

	// AppleRGB 早期 Apple 显示器空间
	AppleRGB = &RGBSpace{
		Name:      "Apple RGB",
		Primaries: Primaries{R: Xy{0.6250, 0.3400}, G: Xy{0.2800, 0.5950}, B: Xy{0.1550, 0.0700}},
		Context:   ctx2(IlluminantD65),
		Transfer:  GammaTransfer(1.8),
	}

	// DisplayP3 Apple Display P3（DCI-P3 基色 + sRGB 曲线 + D65 白点）
	DisplayP3 = &RGBSpace{
		Name:      "Display P3",
		Primaries: Primaries{R: Xy{0.680, 0.320}, G: Xy{0.265, 0.690}, B: Xy{0.150, 0.060}},
		Context:   ctx2(IlluminantD65),
		Transfer:  Transfer{Kind: TransferSRGB},
	}

	// DCIP3 数字影院 P3（DCI 白点，2.6 伽马）
	DCIP3 = &RGBSpace{
		Name:      "DCI-P3",
		Primaries: Primaries{R: Xy{0.680, 0.320}, G: Xy{0.265, 0.690}, B: Xy{0.150, 0.060}},
		Context:   ctx2(IlluminantDCI),
		Transfer:  GammaTransfer(2.6),
	}

	// ProPhotoRGB Kodak ProPhoto / ROMM RGB，覆盖接近全部可见色
	ProPhotoRGB = &RGBSpace{
		Name:      "ProPhoto RGB",
		Primaries: Primaries{R: Xy{0.734699, 0.265301}, G: Xy{0.159597, 0.840403}, B: Xy{0.036598, 0.000105}},
		Context:   ctx2(IlluminantD50),
		Transfer:  Transfer{Kind: TransferProPhoto},
	}

	// Rec709 ITU-R BT.709 高清电视空间
	Rec709 = &RGBSpace{
		Name:      "Rec. 709",
		Primaries: Primaries{R: Xy{0.64, 0.33}, G: Xy{0.30, 0.60}, B: Xy{0.15, 0.06}},
		Context:   ctx2(IlluminantD65),
		Transfer:  Transfer{Kind: TransferBT709},
	}

	// Rec601 ITU-R BT.601 标清电视空间（625 线基色）
	Rec601 = &RGBSpace{
		Name:      "Rec. 601",
		Primaries: Primaries{R: Xy{0.64, 0.33}, G: Xy{0.29, 0.60}, B: Xy{0.15, 0.06}},
		Context:   ctx2(IlluminantD65),
		Transfer:  Transfer{Kind: TransferBT709},
	}

	// Rec2020 ITU-R BT.2020 超高清电视空间
	Rec2020 = &RGBSpace{
		Name:      "Rec. 2020",
		Primaries: Primaries{R: Xy{0.708, 0.292}, G: Xy{0.170, 0.797}, B: Xy{0.131, 0.046}},
		Context:   ctx2(IlluminantD65),
		Transfer:  Transfer{Kind: TransferBT709},
	}

	// Rec2100PQ BT.2100 HDR（PQ 曲线）
	Rec2100PQ = &RGBSpace{
		Name:      "Rec. 2100 PQ",
		Primaries: Primaries{R: Xy{0.708, 0.292}, G: Xy{0.170, 0.797}, B: Xy{0.131, 0.046}},
		Context:   ctx2(IlluminantD65),
		Transfer:  Transfer{Kind: TransferPQ},
	}

	// Rec2100HLG BT.2100 HDR（HLG 曲线）
	Rec2100HLG = &RGBSpace{
		Name:      "Rec. 2100 HLG",
		Primaries: Primaries{R: Xy{0.708, 0.292}, G: Xy{0.170, 0.797}, B: Xy{0.131, 0.046}},
		Context:   ctx2(IlluminantD65),
		Transfer:  Transfer{Kind: TransferHLG},
	}

	// WideGamutRGB Adobe Wide Gamut RGB
	WideGamutRGB = &RGBSpace{
		Name:      "Wide Gamut RGB",
		Primaries: Primaries{R: Xy{0.735, 0.265}, G: Xy{0.115, 0.826}, B: Xy{0.157, 0.018}},
		Context:   ctx2(IlluminantD50),
		Transfer:  GammaTransfer(2.2),
	}

	// BruceRGB Bruce Lindbloom 提出的折中空间
	BruceRGB = &RGBSpace{
		Name:      "Bruce RGB",
		Primaries: Primaries{R: Xy{0.64, 0.33}, G: Xy{0.28, 0.65}, B: Xy{0.15, 0.06}},
		Context:   ctx2(IlluminantD65),
		Transfer:  GammaTransfer(2.2),
	}

	// BestRGB Don Hutcheson 的印刷广色域空间
	BestRGB = &RGBSpace{
		Name:      "Best RGB",
		Primaries: Primaries{R: Xy{0.7347, 0.2653}, G: Xy{0.2150, 0.7750}, B: Xy{0.1300, 0.0350}},
		Context:   ctx2(IlluminantD50),
		Transfer:  GammaTransfer(2.2),
	}

	// BetaRGB Bruce Lindbloom 的优化广色域空间
	BetaRGB = &RGBSpace{
		Name:      "Beta RGB",
		Primaries: Primaries{R: Xy{0.6888, 0.3112}, G: Xy{0.1986, 0.7551}, B: Xy{0.1265, 0.0352}},
		Context:   ctx2(IlluminantD50),
		Transfer:  GammaTransfer(2.2),
	}

	// CIERGB CIE 1931 RGB（等能白点）
	CIERGB = &RGBSpace{
		Name:      "CIE RGB",
		Primaries: Primaries{R: Xy{0.735, 0.265}, G: Xy{0.274, 0.717}, B: Xy{0.167, 0.009}},
		Context:   ctx2(IlluminantE),
		Transfer:  GammaTransfer(2.2),
	}

	// NTSC NTSC 1953（C 白点）
	NTSC = &RGBSpace{
		Name:      "NTSC",
		Primaries: Primaries{R: Xy{0.67, 0.33}, G: Xy{0.21, 0.71}, B: Xy{0.14, 0.08}},
		Context:   ctx2(IlluminantC),
		Transfer:  GammaTransfer(2.2),
	}

	// PALSECAM PAL/SECAM (EBU 3213)
	PALSECAM = &RGBSpace{
		Name:      "PAL/SECAM",
		Primaries: Primaries{R: Xy{0.64, 0.33}, G: Xy{0.29, 0.60}, B: Xy{0.15, 0.06}},
		Context:   ctx2(IlluminantD65),
		Transfer:  GammaTransfer(2.2),
	}

	// ACES2065_1 电影学院 ACES 归档空间（AP0 基色，线性）
	ACES2065_1 = &RGBSpace{
		Name:      "ACES 2065-1",
		Primaries: Primaries{R: Xy{0.7347, 0.2653}, G: Xy{0.0000, 1.0000}, B: Xy{0.0001, -0.0770}},
		Context:   ctx2(IlluminantACES),
		Transfer:  LinearTransfer(),
	}
)

// Catalog 返回全部内置 RGB 空间
func Catalog() []*RGBSpace {
	return []*RGBSpace{
		SRGB, LinearSRGB, AdobeRGB, AppleRGB, DisplayP3, DCIP3, ProPhotoRGB,
		Rec709, Rec601, Rec2020, Rec2100PQ, Rec2100HLG,
		WideGamutRGB, BruceRGB, BestRGB, BetaRGB, CIERGB, NTSC, PALSECAM, ACES2065_1,
	}
}

// SpaceByName 按名称查找内置 RGB 空间
func SpaceByName(name string) (*RGBSpace, bool) {
	for _, s := range Catalog() {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}
