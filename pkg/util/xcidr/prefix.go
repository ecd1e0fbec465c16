package xcidr

import (
	"fmt"
	"net/netip"
	"strings"
)

// ParsePrefix 严格解析 CIDR 表示法（"a.b.c.d/n" 或 "h:h::/n"）。
// 仅接受带前缀长度的完整表示法，裸地址（"10.0.0.1"）返回 [ErrInvalidCIDR]。
// 未对齐网络边界的输入会被归一化（Masked），如 "192.168.1.1/24" → 192.168.1.0/24。
//
// 设计决策: 拒绝包含 IPv6 zone ID 的输入（如 fe80::1%eth0/64）。
// zone 信息在规则集合中会被静默丢弃，导致后续匹配失败，属于高风险正确性问题。
//
// IPv4-mapped IPv6 前缀（::ffff:a.b.c.d/n，n ≥ 96）统一归一化为纯 IPv4 前缀，
// n < 96 的 mapped 前缀无法用 IPv4 语义表达，返回错误。
func ParsePrefix(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "%") {
		return netip.Prefix{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidCIDR, s)
	}
	if !strings.Contains(s, "/") {
		return netip.Prefix{}, fmt.Errorf("%w: missing prefix length: %s", ErrInvalidCIDR, s)
	}

	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %w", ErrInvalidCIDR, err)
	}

	if prefix.Addr().Is4In6() {
		if prefix.Bits() < 96 {
			return netip.Prefix{}, fmt.Errorf("%w: IPv4-mapped prefix shorter than /96: %s", ErrInvalidCIDR, s)
		}
		prefix = netip.PrefixFrom(prefix.Addr().Unmap(), prefix.Bits()-96)
	}

	return prefix.Masked(), nil
}

// MustParsePrefix 与 [ParsePrefix] 相同，但失败时 panic。
// 仅用于编译期已知合法的固定数据（如内置保留地址表）。
func MustParsePrefix(s string) netip.Prefix {
	prefix, err := ParsePrefix(s)
	if err != nil {
		panic(err)
	}
	return prefix
}

// Contains 判断 addr 是否落在 prefix 网段内。
// 跨地址族永不匹配：IPv6 地址对 IPv4 前缀返回 false，反之亦然。
// 无效（零值）地址返回 false。
//
// IPv4-mapped IPv6 地址在匹配前统一 Unmap 为纯 IPv4，
// 确保 ::ffff:10.0.0.1 与 10.0.0.1 对同一规则产生一致结果。
func Contains(prefix netip.Prefix, addr netip.Addr) bool {
	if !prefix.IsValid() || !addr.IsValid() {
		return false
	}
	addr = addr.Unmap()
	if prefix.Addr().Is4() != addr.Is4() {
		return false
	}
	return prefix.Contains(addr)
}
