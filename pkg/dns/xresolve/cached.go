package xresolve

import (
	"context"
	"net/netip"
	"reflect"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// maxCacheSize 缓存最大条目数上限。
const maxCacheSize = 1 << 20

// CacheConfig 定义解析缓存配置。
type CacheConfig struct {
	// Size 缓存最大条目数。
	// 必须大于 0 且不超过 1,048,576。
	Size int

	// TTL 缓存条目过期时间。
	// 0 表示永不过期，不允许负值。
	// DNS 结果会随时间漂移，生产环境建议设置有限 TTL（如 30s-5m）。
	TTL time.Duration
}

// Cached 是带 TTL 的 LRU 解析缓存装饰器。
// 必须通过 [NewCached] 创建。所有方法都是并发安全的。
// 调用 Close 后查询直接穿透到内层解析器。
//
// 仅缓存成功结果（正缓存）：解析失败每次都穿透到内层解析器，
// 避免把一次瞬时故障放大为 TTL 周期内的持续故障。
// 缓存是纯优化：对确定性内层解析器，有无缓存的解析结果完全一致。
type Cached struct {
	inner     Resolver
	lru       *expirable.LRU[string, []netip.Addr]
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewCached 创建解析缓存装饰器。
// inner 为 nil 返回 [ErrNilResolver]；
// cfg.Size 非法返回 [ErrInvalidSize]；cfg.TTL 为负返回 [ErrInvalidTTL]。
func NewCached(inner Resolver, cfg CacheConfig) (*Cached, error) {
	if inner == nil {
		return nil, ErrNilResolver
	}
	if cfg.Size <= 0 || cfg.Size > maxCacheSize {
		return nil, ErrInvalidSize
	}
	if cfg.TTL < 0 {
		return nil, ErrInvalidTTL
	}
	return &Cached{
		inner: inner,
		lru:   expirable.NewLRU[string, []netip.Addr](cfg.Size, nil, cfg.TTL),
	}, nil
}

// LookupAddrs 先查缓存，未命中时委托内层解析器并缓存成功结果。
// 缓存已关闭时直接穿透。
func (c *Cached) LookupAddrs(ctx context.Context, host string) ([]netip.Addr, error) {
	if c.closed.Load() {
		return c.inner.LookupAddrs(ctx, host)
	}

	if addrs, ok := c.lru.Get(host); ok {
		return copyAddrs(addrs), nil
	}

	addrs, err := c.inner.LookupAddrs(ctx, host)
	if err != nil {
		return nil, err
	}
	c.lru.Add(host, addrs)
	return copyAddrs(addrs), nil
}

// Len 返回当前缓存条目数。
// 返回值可能包含已过期但尚未被后台清理的条目。缓存已关闭时返回 0。
func (c *Cached) Len() int {
	if c.closed.Load() {
		return 0
	}
	return c.lru.Len()
}

// Purge 清空全部缓存条目。缓存已关闭时静默忽略。
func (c *Cached) Purge() {
	if c.closed.Load() {
		return
	}
	c.lru.Purge()
}

// Close 关闭缓存，释放资源。幂等：多次调用只执行一次清理。
// Close 会清空所有条目并停止 TTL 过期清理 goroutine，之后查询直接穿透内层解析器。
func (c *Cached) Close() {
	c.closed.Store(true)
	c.closeOnce.Do(func() {
		c.lru.Purge()
		stopCleanupGoroutine(c.lru)
	})
}

// copyAddrs 返回地址列表副本，防止调用方修改缓存内的共享切片。
func copyAddrs(addrs []netip.Addr) []netip.Addr {
	out := make([]netip.Addr, len(addrs))
	copy(out, addrs)
	return out
}

// stopCleanupGoroutine 停止 expirable.LRU 内部的清理 goroutine。
// 返回 true 表示成功停止，false 表示降级为无操作（上游结构变化或通道已关闭）。
//
// 设计决策: hashicorp/golang-lru/v2@v2.0.7 在 TTL > 0 时启动后台 goroutine 清理过期条目，
// 但其 Close() 方法被注释掉（源码注释："decided to add functionality to close it in the version
// later than v2"），无法通过公开 API 停止。此函数通过 reflect + unsafe 访问内部 done 通道
// (类型 chan struct{}) 并关闭它，使后台 goroutine 退出。
//
// 维护须知: 升级 golang-lru 版本时，检查上游是否已实现公开的 Close() 方法。
// 若已实现，应移除此函数并直接调用上游 Close()。
func stopCleanupGoroutine(lru any) (stopped bool) {
	defer func() {
		// close(doneCh) 可能因通道已关闭而 panic，静默捕获并返回 false
		if r := recover(); r != nil {
			stopped = false
		}
	}()

	v := reflect.ValueOf(lru)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}

	doneField := v.Elem().FieldByName("done")
	if !doneField.IsValid() || doneField.IsNil() {
		return false
	}

	if doneField.Type() != reflect.TypeOf(make(chan struct{})) {
		return false
	}

	doneCh := *(*chan struct{})(unsafe.Pointer(doneField.UnsafeAddr())) //nolint:gosec // 有意使用 unsafe 访问内部字段
	close(doneCh)
	return true
}
