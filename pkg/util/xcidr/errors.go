package xcidr

import "errors"

var (
	// ErrInvalidCIDR 表示无效的 CIDR 表示法。
	ErrInvalidCIDR = errors.New("xcidr: invalid CIDR notation")
)
