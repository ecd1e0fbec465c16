package xssrf

import "github.com/omeyang/xguard/pkg/util/xcidr"

// reservedCIDRs 是内置的 IPv4 保留/私有地址表，不可由使用方修改。
// 覆盖本网络、私有网段、CGNAT、回环、链路本地、共享地址、文档示例段、
// 基准测试段、链路本地组播与保留段。
var reservedCIDRs = []string{
	"0.0.0.0/8",       // 本网络（RFC 1122）
	"10.0.0.0/8",      // 私有网段（RFC 1918）
	"100.64.0.0/10",   // CGNAT 共享地址（RFC 6598）
	"127.0.0.0/8",     // 回环（RFC 1122）
	"169.254.0.0/16",  // 链路本地（RFC 3927），含云元数据端点
	"172.16.0.0/12",   // 私有网段（RFC 1918）
	"192.0.0.0/24",    // IETF 协议保留（RFC 6890）
	"192.0.2.0/24",    // 文档示例 TEST-NET-1（RFC 5737）
	"192.88.99.0/24",  // 6to4 中继（RFC 3068）
	"192.168.0.0/16",  // 私有网段（RFC 1918）
	"198.18.0.0/15",   // 基准测试段（RFC 2544）
	"198.51.100.0/24", // 文档示例 TEST-NET-2（RFC 5737）
	"203.0.113.0/24",  // 文档示例 TEST-NET-3（RFC 5737）
	"224.0.0.0/24",    // 链路本地组播（RFC 5771）
	"240.0.0.0/4",     // 保留段（RFC 1112），含受限广播地址
}

// 包加载时编译一次，全程只读。表内条目固定合法，Must 不会 panic。
var reservedSet = xcidr.MustParseSet(reservedCIDRs)

// ReservedRanges 返回内置保留地址表的 CIDR 列表（配置顺序的副本）。
// 用于文档输出与命令行展示。
func ReservedRanges() []string {
	return reservedSet.Strings()
}
