package colorspace

// Illuminant 表示一种标准或自定义光源
// 光谱功率分布对色匹配函数的积分在此视为黑盒：
// 每个标准光源直接携带两种观察者下的参考白三刺激值（预先计算，Y=1）
type Illuminant struct {
	name    string
	white2  Vector3
	white10 Vector3
}

// NewIlluminant 创建自定义光源，两种观察者共用同一参考白
func NewIlluminant(name string, white Vector3) Illuminant {
	return Illuminant{name: name, white2: white, white10: white}
}

// Name 返回光源名称
func (i Illuminant) Name() string {
	return i.name
}

// White 返回该光源在给定观察者下的参考白三刺激值
func (i Illuminant) White(o Observer) Vector3 {
	if o == Observer1964 {
		return i.white10
	}
	return i.white2
}

func (i Illuminant) String() string {
	return i.name
}

// 标准光源参考白（Y = 1），分别对应 CIE 1931 2° 与 CIE 1964 10° 观察者
var (
	// IlluminantA 白炽灯 (~2856K)
	IlluminantA = Illuminant{"A", Vector3{1.09850, 1.0, 0.35585}, Vector3{1.11144, 1.0, 0.35200}}
	// IlluminantB 直射日光 (~4874K)，已弃用但仍见于旧数据
	IlluminantB = Illuminant{"B", Vector3{0.99072, 1.0, 0.85223}, Vector3{0.99178, 1.0, 0.84349}}
	// IlluminantC 平均日光 (~6774K)
	IlluminantC = Illuminant{"C", Vector3{0.98074, 1.0, 1.18232}, Vector3{0.97285, 1.0, 1.16145}}
	// IlluminantD50 地平线日光 (~5003K)，印刷行业标准
	IlluminantD50 = Illuminant{"D50", Vector3{0.96422, 1.0, 0.82521}, Vector3{0.96720, 1.0, 0.81427}}
	// IlluminantD55 上午/下午日光 (~5503K)
	IlluminantD55 = Illuminant{"D55", Vector3{0.95682, 1.0, 0.92149}, Vector3{0.95799, 1.0, 0.90926}}
	// IlluminantD65 正午日光 (~6504K)，显示行业标准
	IlluminantD65 = Illuminant{"D65", Vector3{0.95047, 1.0, 1.08883}, Vector3{0.94811, 1.0, 1.07304}}
	// IlluminantD75 北方天空日光 (~7504K)
	IlluminantD75 = Illuminant{"D75", Vector3{0.94972, 1.0, 1.22638}, Vector3{0.94416, 1.0, 1.20641}}
	// IlluminantE 等能光源
	IlluminantE = Illuminant{"E", Vector3{1.0, 1.0, 1.0}, Vector3{1.0, 1.0, 1.0}}
	// IlluminantF2 冷白荧光灯 (~4230K)
	IlluminantF2 = Illuminant{"F2", Vector3{0.99186, 1.0, 0.67393}, Vector3{1.03279, 1.0, 0.69027}}
	// IlluminantF7 D65 模拟荧光灯 (~6500K)
	IlluminantF7 = Illuminant{"F7", Vector3{0.95041, 1.0, 1.08747}, Vector3{0.95792, 1.0, 1.07686}}
	// IlluminantF11 窄带三基色荧光灯 (~4000K)
	IlluminantF11 = Illuminant{"F11", Vector3{1.00962, 1.0, 0.64350}, Vector3{1.03863, 1.0, 0.65607}}
)

// IlluminantByName 按名称查找标准光源
func IlluminantByName(name string) (Illuminant, bool) {
	for _, i := range []Illuminant{
		IlluminantA, IlluminantB, IlluminantC,
		IlluminantD50, IlluminantD55, IlluminantD65, IlluminantD75,
		IlluminantE, IlluminantF2, IlluminantF7, IlluminantF11,
	} {
		if i.name == name {
			return i, true
		}
	}
	return Illuminant{}, false
}
