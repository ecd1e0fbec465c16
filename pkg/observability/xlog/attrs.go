package xlog

import (
	"log/slog"
	"time"
)

// 守卫领域的便捷属性构造函数。
// 统一字段命名，避免各调用点手写 key 造成漂移。

// Err 构造错误属性。nil 错误输出空字符串。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Component 构造组件名属性。
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Host 构造主机名属性。
func Host(host string) slog.Attr {
	return slog.String("host", host)
}

// URL 构造 URL 属性。
func URL(raw string) slog.Attr {
	return slog.String("url", raw)
}

// Scheme 构造 URL scheme 属性。
func Scheme(scheme string) slog.Attr {
	return slog.String("scheme", scheme)
}

// Reason 构造拒绝原因属性。
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Addr 构造解析后地址属性。
func Addr(addr string) slog.Attr {
	return slog.String("addr", addr)
}

// Duration 构造耗时属性，输出人类可读格式（如 "5ms"）。
// 如需机器解析的数值格式，使用 slog.Int64("duration_ms", d.Milliseconds())。
func Duration(d time.Duration) slog.Attr {
	return slog.String("duration", d.String())
}
