package xcidr

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Set 是编译后的不可变 CIDR 规则集。
// 必须通过 [ParseSet] / [MustParseSet] / [SetOf] 创建，零值等价于空集。
// 所有方法都是并发安全的（构建后只读）。
type Set struct {
	prefixes []netip.Prefix
	set      *netipx.IPSet
}

// ParseSet 将 CIDR 字符串列表编译为规则集。
// 每个条目使用 [ParsePrefix] 严格解析，任一条目非法即整体失败（快速失败），
// 错误信息携带出错条目的下标与原文。
// 空切片或 nil 返回空集（非 nil，Contains 恒为 false）。
func ParseSet(cidrs []string) (*Set, error) {
	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for i, s := range cidrs {
		prefix, err := ParsePrefix(s)
		if err != nil {
			return nil, fmt.Errorf("parse CIDR [%d] %q: %w", i, s, err)
		}
		prefixes = append(prefixes, prefix)
	}
	return SetOf(prefixes)
}

// MustParseSet 与 [ParseSet] 相同，但失败时 panic。
// 仅用于编译期已知合法的固定数据。
func MustParseSet(cidrs []string) *Set {
	set, err := ParseSet(cidrs)
	if err != nil {
		panic(err)
	}
	return set
}

// SetOf 从已解析的前缀列表构建规则集。
// 重叠和相邻的网段在内部自动合并，不影响 [Set.Prefixes] 返回的原始列表。
func SetOf(prefixes []netip.Prefix) (*Set, error) {
	var b netipx.IPSetBuilder
	for _, p := range prefixes {
		b.AddPrefix(p)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return &Set{
		prefixes: prefixes,
		set:      set,
	}, nil
}

// Contains 判断 addr 是否落在规则集的任一网段内。
// 查询复杂度 O(log n)。无效（零值）地址返回 false。
// IPv4-mapped IPv6 地址在匹配前统一 Unmap，与 [Contains] 行为一致。
func (s *Set) Contains(addr netip.Addr) bool {
	if s == nil || s.set == nil || !addr.IsValid() {
		return false
	}
	return s.set.Contains(addr.Unmap())
}

// Empty 报告规则集是否不含任何网段。
func (s *Set) Empty() bool {
	return s == nil || len(s.prefixes) == 0
}

// Len 返回规则集的原始条目数（合并前）。
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.prefixes)
}

// Prefixes 返回规则集的原始前缀列表副本（保持配置顺序）。
func (s *Set) Prefixes() []netip.Prefix {
	if s == nil || len(s.prefixes) == 0 {
		return nil
	}
	out := make([]netip.Prefix, len(s.prefixes))
	copy(out, s.prefixes)
	return out
}

// Strings 返回规则集的原始条目的字符串形式（保持配置顺序）。
// 用于日志输出与命令行展示。
func (s *Set) Strings() []string {
	if s == nil || len(s.prefixes) == 0 {
		return nil
	}
	out := make([]string, len(s.prefixes))
	for i, p := range s.prefixes {
		out[i] = p.String()
	}
	return out
}
