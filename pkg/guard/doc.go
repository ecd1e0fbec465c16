// Package guard 提供出站请求目标校验相关的子包。
//
// 子包列表：
//   - xssrf: URL/地址校验核心，scheme、allowlist、blocklist 与内置保留表判定
//   - xhttp: 带校验的 HTTP 客户端，重定向复查与拨号复查
package guard
