package xssrf

import (
	"fmt"
	"strings"

	"github.com/omeyang/xguard/pkg/dns/xresolve"
	"github.com/omeyang/xguard/pkg/observability/xlog"
	"github.com/omeyang/xguard/pkg/observability/xmetrics"
	"github.com/omeyang/xguard/pkg/util/xcidr"
)

// options 是一次判定的完整配置快照。
// 构建完成后只读；每次调用在副本上应用单次选项，互不干扰。
type options struct {
	schemes       map[string]struct{}
	blockReserved bool
	blocklist     *xcidr.Set
	allowlist     *xcidr.Set
	detailed      bool
	resolver      xresolve.Resolver
	logger        xlog.Logger
	observer      xmetrics.Observer

	// err 记录选项应用过程中的首个错误（如非法 CIDR），
	// 首错优先，后续选项跳过不再执行。
	err error
}

// Option 定义 Guard 的配置选项，可在构造与单次调用两处应用。
type Option func(*options)

// defaultOptions 返回硬编码默认配置：
// schemes {http, https}、block_reserved 开启、列表为空、detailed_error 开启。
func defaultOptions() *options {
	return &options{
		schemes: map[string]struct{}{
			"http":  {},
			"https": {},
		},
		blockReserved: true,
		detailed:      true,
	}
}

// clone 返回浅拷贝快照。
// schemes 映射被 WithSchemes 整体替换而非原地修改，浅拷贝即足够隔离。
func (o *options) clone() *options {
	c := *o
	return &c
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}

// WithSchemes 整体替换允许的 scheme 集合，匹配不区分大小写。
// 显式传入空集（WithSchemes()）表示拒绝一切 scheme，不回退下层配置。
func WithSchemes(schemes ...string) Option {
	return func(o *options) {
		if o.err != nil {
			return
		}
		set := make(map[string]struct{}, len(schemes))
		for _, s := range schemes {
			set[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
		}
		o.schemes = set
	}
}

// WithBlockReserved 控制是否启用内置保留地址表。
func WithBlockReserved(enabled bool) Option {
	return func(o *options) {
		if o.err != nil {
			return
		}
		o.blockReserved = enabled
	}
}

// WithBlocklist 整体替换显式拒绝列表。
// 条目在此处一次性编译校验，非法 CIDR 使 New/Validate 返回 [ErrInvalidOptions]。
func WithBlocklist(cidrs ...string) Option {
	return func(o *options) {
		if o.err != nil {
			return
		}
		set, err := xcidr.ParseSet(cidrs)
		if err != nil {
			o.err = fmt.Errorf("%w: blocklist: %w", ErrInvalidOptions, err)
			return
		}
		o.blocklist = set
	}
}

// WithAllowlist 整体替换允许列表。
// 非空时 allowlist 是唯一裁决来源：命中放行，未命中拒绝，
// blocklist 与保留表均不参与。显式传入空集即关闭下层配置的 allowlist。
func WithAllowlist(cidrs ...string) Option {
	return func(o *options) {
		if o.err != nil {
			return
		}
		set, err := xcidr.ParseSet(cidrs)
		if err != nil {
			o.err = fmt.Errorf("%w: allowlist: %w", ErrInvalidOptions, err)
			return
		}
		o.allowlist = set
	}
}

// WithDetailedError 控制拒绝错误的粒度。
// 关闭后所有拒绝对调用方统一为 [ErrRestricted]，日志与指标仍记录真实原因。
func WithDetailedError(enabled bool) Option {
	return func(o *options) {
		if o.err != nil {
			return
		}
		o.detailed = enabled
	}
}

// WithResolver 注入 DNS 解析器，nil 时忽略（沿用下层配置或 xresolve.Default）。
func WithResolver(r xresolve.Resolver) Option {
	return func(o *options) {
		if o.err != nil || r == nil {
			return
		}
		o.resolver = r
	}
}

// WithLogger 注入日志器，nil 时忽略（默认使用 xlog.Default）。
func WithLogger(logger xlog.Logger) Option {
	return func(o *options) {
		if o.err != nil || logger == nil {
			return
		}
		o.logger = logger
	}
}

// WithObserver 注入决策指标观察者，nil 时忽略（默认不记录指标）。
func WithObserver(observer xmetrics.Observer) Option {
	return func(o *options) {
		if o.err != nil || observer == nil {
			return
		}
		o.observer = observer
	}
}
