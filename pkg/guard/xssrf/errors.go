package xssrf

import "errors"

var (
	// ErrDenied 是所有拒绝结果的统一基错误。
	// errors.Is(err, ErrDenied) 可判断任意原因的拒绝。
	ErrDenied = errors.New("xssrf: request denied")

	// ErrUnsafeScheme 表示 URL scheme 不在允许的 scheme 集合内。
	ErrUnsafeScheme = errors.New("xssrf: unsafe scheme")

	// ErrUnsafeAllowlist 表示配置了允许列表但地址不在其中。
	ErrUnsafeAllowlist = errors.New("xssrf: address not in allowlist")

	// ErrUnsafeBlocklist 表示地址落在显式拒绝列表内。
	ErrUnsafeBlocklist = errors.New("xssrf: address in blocklist")

	// ErrUnsafeReserved 表示地址落在内置保留/私有地址表内。
	ErrUnsafeReserved = errors.New("xssrf: address in reserved range")

	// ErrRestricted 是 detailed_error 关闭时所有拒绝原因的统一形式。
	ErrRestricted = errors.New("xssrf: restricted")

	// ErrInvalidURL 表示 URL 无法解析。
	ErrInvalidURL = errors.New("xssrf: invalid URL")

	// ErrInvalidOptions 表示选项配置非法（如非法 CIDR 条目）。
	ErrInvalidOptions = errors.New("xssrf: invalid options")
)
