package xmetrics

import (
	"context"
	"time"
)

// Verdict 表示决策结果。
type Verdict string

const (
	// VerdictAllowed 表示放行。
	VerdictAllowed Verdict = "allowed"

	// VerdictDenied 表示拒绝。
	VerdictDenied Verdict = "denied"
)

// Decision 表示一次校验决策的观测数据。
type Decision struct {
	// Verdict 决策结果。
	Verdict Verdict

	// Reason 拒绝原因（如 "unsafe_reserved"）；放行时为空字符串。
	Reason string

	// Scheme URL scheme（如 "https"）。
	Scheme string

	// Duration 决策耗时，含地址解析。
	Duration time.Duration
}

// Observer 定义决策观测接口。
// 实现不得返回 error：观测失败永不影响决策结果。
type Observer interface {
	// ObserveDecision 记录一次决策。
	ObserveDecision(ctx context.Context, d Decision)
}

// NoopObserver 是空实现。
type NoopObserver struct{}

// ObserveDecision 空实现，不做任何处理。
func (NoopObserver) ObserveDecision(_ context.Context, _ Decision) {}

// Observe 使用 observer 记录决策，nil observer 时为空操作。
// nil ctx 会被替换为 context.Background()，调用方无需在热路径上做判空。
func Observe(ctx context.Context, observer Observer, d Decision) {
	if observer == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	observer.ObserveDecision(ctx, d)
}
