// Package xhttp 提供带目标校验的 HTTP 客户端。
//
// 在 pkg/guard/xssrf 的 URL 校验之上增加两道运行时防线：
//   - 重定向复查：每一跳重定向目标都重新过一遍 Validate，
//     防止"合法 URL 重定向到内网"绕过首次校验
//   - 拨号复查：net.Dialer.Control 在 TCP 连接建立前用相同规则
//     检查实际拨号地址，收窄校验与连接之间的 DNS 重绑定窗口
//
// 所有拒绝以 xssrf 的错误值形式暴露（可能包装在 *url.Error 中），
// errors.Is(err, xssrf.ErrDenied) 始终可用。
//
// 已知局限：拨号复查使用 Guard 的构造配置，Validate 的单次调用选项
// 不传递到拨号时刻。
package xhttp
