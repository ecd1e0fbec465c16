package xssrf

// Reason 标识一次拒绝判定的原因。
// 零值 ReasonNone 表示放行（无拒绝原因）。
type Reason int

const (
	// ReasonNone 放行，无拒绝原因
	ReasonNone Reason = iota
	// ReasonScheme URL scheme 不在允许集合内
	ReasonScheme
	// ReasonAllowlist 配置了允许列表但地址不在其中
	ReasonAllowlist
	// ReasonBlocklist 地址命中显式拒绝列表
	ReasonBlocklist
	// ReasonReserved 地址命中内置保留地址表
	ReasonReserved
	// ReasonRestricted detailed_error 关闭时的统一降级原因
	ReasonRestricted
)

// String 返回原因的稳定字符串标识，用于日志与指标标签。
func (r Reason) String() string {
	switch r {
	case ReasonScheme:
		return "unsafe_scheme"
	case ReasonAllowlist:
		return "unsafe_allowlist"
	case ReasonBlocklist:
		return "unsafe_blocklist"
	case ReasonReserved:
		return "unsafe_reserved"
	case ReasonRestricted:
		return "restricted"
	default:
		return "none"
	}
}

// sentinel 返回该原因对应的哨兵错误，ReasonNone 返回 nil。
func (r Reason) sentinel() error {
	switch r {
	case ReasonScheme:
		return ErrUnsafeScheme
	case ReasonAllowlist:
		return ErrUnsafeAllowlist
	case ReasonBlocklist:
		return ErrUnsafeBlocklist
	case ReasonReserved:
		return ErrUnsafeReserved
	case ReasonRestricted:
		return ErrRestricted
	default:
		return nil
	}
}
