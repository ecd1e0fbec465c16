// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xcidr: CIDR 解析与规则集匹配，基于 net/netip + go4.org/netipx
//
// 设计原则：
//   - 严格解析，非法输入快速失败
//   - 构建后不可变，并发只读
package util
