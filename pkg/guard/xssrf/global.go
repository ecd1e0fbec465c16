package xssrf

import (
	"context"
	"sync/atomic"
)

// 包级默认 Guard，惰性初始化。
// 需要进程级统一配置时，在启动阶段 SetDefault 一次即可。
var globalGuard atomic.Pointer[Guard]

// Default 返回包级默认 Guard，首次调用时以硬编码默认值构建。
func Default() *Guard {
	if g := globalGuard.Load(); g != nil {
		return g
	}
	g, err := New()
	if err != nil {
		// 默认选项固定合法，此分支不可达。
		panic(err)
	}
	globalGuard.CompareAndSwap(nil, g)
	return globalGuard.Load()
}

// SetDefault 替换包级默认 Guard，nil 忽略。
func SetDefault(g *Guard) {
	if g == nil {
		return
	}
	globalGuard.Store(g)
}

// ResetDefault 恢复包级默认 Guard 为硬编码默认配置（惰性重建）。
// 主要用于测试隔离。
func ResetDefault() {
	globalGuard.Store(nil)
}

// Validate 使用包级默认 Guard 校验，等价于 Default().Validate。
func Validate(ctx context.Context, rawURL string, opts ...Option) error {
	return Default().Validate(ctx, rawURL, opts...)
}

// Allowed 使用包级默认 Guard 判定，等价于 Default().Allowed。
func Allowed(ctx context.Context, rawURL string, opts ...Option) bool {
	return Default().Allowed(ctx, rawURL, opts...)
}
