package xresolve

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"sync"
	"time"
)

//go:generate mockgen -source=resolver.go -destination=mock_resolver_test.go -package=xresolve

// Resolver 定义主机名解析能力。
// 任何满足此契约的实现都可以注入守卫逻辑：
// 系统解析器、测试替身、带缓存的自定义解析器等。
type Resolver interface {
	// LookupAddrs 解析主机名，返回非空的有序地址列表。
	// 解析失败或结果为空时返回 error（包装 [ErrLookupFailed]），
	// 永远不返回 (nil, nil)。
	LookupAddrs(ctx context.Context, host string) ([]netip.Addr, error)
}

// defaultTimeout 单次查询的默认超时时间。
const defaultTimeout = 5 * time.Second

// Option 定义 [NetResolver] 的配置选项。
type Option func(*NetResolver)

// WithTimeout 设置单次查询的超时时间。
// 非正值会被忽略，保持默认值 5s。
func WithTimeout(d time.Duration) Option {
	return func(r *NetResolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithNetResolver 替换底层的 [*net.Resolver]。
// nil 会被忽略。
func WithNetResolver(nr *net.Resolver) Option {
	return func(r *NetResolver) {
		if nr != nil {
			r.resolver = nr
		}
	}
}

// NetResolver 是基于 [net.Resolver] 的生产实现。
// 必须通过 [New] 创建。所有方法都是并发安全的。
type NetResolver struct {
	resolver *net.Resolver
	timeout  time.Duration
}

// New 创建系统解析器。
func New(opts ...Option) *NetResolver {
	r := &NetResolver{
		resolver: net.DefaultResolver,
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// LookupAddrs 解析主机名。
// 内置单次查询超时（见 [WithTimeout]），到期返回失败而非无限阻塞；
// 外部 context 的取消与截止时间同样生效（取两者更早的）。
func (r *NetResolver) LookupAddrs(ctx context.Context, host string) ([]netip.Addr, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	addrs, err := r.resolver.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLookupFailed, host, err)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: %s: empty result", ErrLookupFailed, host)
	}
	return addrs, nil
}

// 全局默认解析器（惰性初始化，进程内单例）。
var defaultResolver = sync.OnceValue(func() *NetResolver {
	return New()
})

// Default 返回全局默认解析器。
// 惰性初始化：首次调用时以默认配置创建。
// 适用于脚手架等简单场景，服务端推荐依赖注入。
func Default() Resolver {
	return defaultResolver()
}
