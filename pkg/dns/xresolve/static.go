package xresolve

import (
	"context"
	"fmt"
	"net/netip"
)

// Static 是确定性的映射解析器。
// 适用于测试替身与固定主机映射场景。
// 构建后只读，所有方法并发安全。
type Static struct {
	hosts map[string][]netip.Addr
}

// NewStatic 从 "主机名 → 地址字符串列表" 映射创建确定性解析器。
// 任一地址字符串非法即整体失败。
func NewStatic(hosts map[string][]string) (*Static, error) {
	parsed := make(map[string][]netip.Addr, len(hosts))
	for host, addrStrs := range hosts {
		addrs := make([]netip.Addr, 0, len(addrStrs))
		for _, s := range addrStrs {
			addr, err := netip.ParseAddr(s)
			if err != nil {
				return nil, fmt.Errorf("xresolve: parse static address %q for host %q: %w", s, host, err)
			}
			addrs = append(addrs, addr)
		}
		parsed[host] = addrs
	}
	return &Static{hosts: parsed}, nil
}

// MustStatic 与 [NewStatic] 相同，但失败时 panic。
// 仅用于测试中的固定数据。
func MustStatic(hosts map[string][]string) *Static {
	s, err := NewStatic(hosts)
	if err != nil {
		panic(err)
	}
	return s
}

// LookupAddrs 返回映射中注册的地址列表。
// 未注册的主机名或注册为空列表的主机名返回 [ErrLookupFailed]。
func (s *Static) LookupAddrs(_ context.Context, host string) ([]netip.Addr, error) {
	addrs, ok := s.hosts[host]
	if !ok || len(addrs) == 0 {
		return nil, fmt.Errorf("%w: %s: host not registered", ErrLookupFailed, host)
	}
	out := make([]netip.Addr, len(addrs))
	copy(out, addrs)
	return out, nil
}
