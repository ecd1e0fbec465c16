package xssrf

import (
	"errors"
	"fmt"
	"net/netip"
)

// DeniedError 描述一次被拒绝的校验结果。
// 通过 errors.Is 可同时匹配统一基错误 [ErrDenied] 与原因对应的哨兵错误；
// 通过 errors.As / [ReasonOf] 可取出结构化字段。
type DeniedError struct {
	// Reason 拒绝原因
	Reason Reason
	// URL 原始待校验 URL
	URL string
	// Host URL 中的主机部分（不含端口与方括号）
	Host string
	// Addr 解析得到的地址；未做解析或解析失败时为零值
	Addr netip.Addr
}

// Error 实现 error 接口。
func (e *DeniedError) Error() string {
	target := e.URL
	if target == "" {
		// 地址级校验（CheckAddr）没有 URL，退回主机标识。
		target = e.Host
	}
	if e.Addr.IsValid() {
		return fmt.Sprintf("xssrf: request to %q denied (%s, addr=%s)", target, e.Reason, e.Addr)
	}
	return fmt.Sprintf("xssrf: request to %q denied (%s)", target, e.Reason)
}

// Is 支持 errors.Is 匹配 [ErrDenied] 与原因哨兵错误。
func (e *DeniedError) Is(target error) bool {
	if target == nil {
		return false
	}
	if target == ErrDenied {
		return true
	}
	return target == e.Reason.sentinel()
}

// ReasonOf 提取错误链中的拒绝原因。
// err 不含 [*DeniedError] 时返回 (ReasonNone, false)。
func ReasonOf(err error) (Reason, bool) {
	var denied *DeniedError
	if errors.As(err, &denied) {
		return denied.Reason, true
	}
	return ReasonNone, false
}
