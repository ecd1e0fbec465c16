// Package xcidr 提供 CIDR 规则解析与地址匹配能力。
//
// xcidr 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 面向访问控制场景（允许列表 / 拒绝列表 / 保留地址表）：
// 把 CIDR 字符串列表一次性编译为不可变的 [*Set]，
// 之后以 O(log n) 复杂度判断地址是否落入任一网段。
//
// # 核心功能
//
//   - prefix.go: [ParsePrefix] 严格解析 CIDR 表示法，[Contains] 单前缀包含判断
//   - set.go: [Set] 编译后的规则集，[ParseSet] / [MustParseSet] 构建入口
//
// # 快速示例
//
// 解析单个 CIDR 并判断包含关系：
//
//	p, _ := xcidr.ParsePrefix("10.0.0.0/8")
//	fmt.Println(xcidr.Contains(p, netip.MustParseAddr("10.1.2.3")))  // true
//
// 编译规则集并查询：
//
//	set, _ := xcidr.ParseSet([]string{"10.0.0.0/8", "192.168.0.0/16"})
//	fmt.Println(set.Contains(netip.MustParseAddr("192.168.1.1")))  // true
//	fmt.Println(set.Contains(netip.MustParseAddr("8.8.8.8")))      // false
//
// # 设计决策
//
//   - 规则在配置加载期一次性解析校验（[ParseSet] 快速失败），
//     判定热路径不做任何字符串解析，非法 CIDR 不可能进入请求期
//   - 地址族严格隔离：IPv4 地址永不匹配 IPv6 前缀，反之亦然；
//     IPv4-mapped IPv6 地址（::ffff:a.b.c.d）在匹配前统一 Unmap 为纯 IPv4，
//     避免同一地址因书写形式不同而绕过规则
//   - 拒绝包含 IPv6 zone ID 的输入（如 fe80::1%eth0）：
//     netipx 会静默丢弃 zone 信息，导致规则误判
//   - 无效（零值）地址匹配任何前缀都返回 false，
//     上层可放心把"解析失败的地址"交给匹配器而不会误放行
//
// # 边界前缀
//
// /0 匹配对应地址族的全部地址；/32（IPv4）与 /128（IPv6）恰好匹配单个地址。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xcidr.ParsePrefix("not-a-cidr")
//	if errors.Is(err, xcidr.ErrInvalidCIDR) {
//	    // 处理非法 CIDR
//	}
package xcidr
