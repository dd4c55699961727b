package colorspace

// Observer 表示 CIE 标准观察者（视场角）
type Observer int

const (
	// Observer1931 CIE 1931 2° 标准观察者
	Observer1931 Observer = iota
	// Observer1964 CIE 1964 10° 标准观察者
	Observer1964
)

// Name 返回观察者名称
func (o Observer) Name() string {
	switch o {
	case Observer1964:
		return "CIE 1964 10°"
	default:
		return "CIE 1931 2°"
	}
}

func (o Observer) String() string {
	return o.Name()
}
