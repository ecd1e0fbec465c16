package xresolve

import (
	"context"
	"net/netip"
	"strings"
)

// First 把主机字符串解析为单个 IP 地址。
//
// 解析规则：
//   - host 是合法 IP 字面量（含 "[::1]" 带方括号形式）→ 直接解析，不做 DNS 查询
//   - 否则委托 r 解析，确定性选择返回列表的首个地址
//     （已知局限：不做轮询、不做多地址回退）
//   - r 为 nil 时使用 [Default]
//
// 解析失败、结果为空时返回零值 [netip.Addr] 而非错误：
// 调用方必须把无效地址当作"永不匹配任何网段"处理，绝不能当作"放行"。
//
// 返回的地址统一 Unmap（::ffff:a.b.c.d → a.b.c.d）并剥离 IPv6 zone，
// 确保同一地址的不同书写形式对规则匹配产生一致结果。
func First(ctx context.Context, r Resolver, host string) netip.Addr {
	host = strings.TrimSpace(host)
	if host == "" {
		return netip.Addr{}
	}

	// URL 中的 IPv6 字面量带方括号（如 "[::1]"），url.Hostname() 已剥离，
	// 这里再兜底一次以支持直接传入原始 host 的调用方。
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		host = host[1 : len(host)-1]
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		return normalize(addr)
	}

	if r == nil {
		r = Default()
	}
	addrs, err := r.LookupAddrs(ctx, host)
	if err != nil || len(addrs) == 0 {
		return netip.Addr{}
	}
	return normalize(addrs[0])
}

// normalize 统一地址形式：Unmap mapped 地址并剥离 zone。
func normalize(addr netip.Addr) netip.Addr {
	return addr.Unmap().WithZone("")
}
