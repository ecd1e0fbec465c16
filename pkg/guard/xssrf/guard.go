package xssrf

import (
	"context"
	"fmt"
	"net/netip"
	"net/url"
	"strings"
	"time"

	"github.com/omeyang/xguard/pkg/dns/xresolve"
	"github.com/omeyang/xguard/pkg/observability/xlog"
	"github.com/omeyang/xguard/pkg/observability/xmetrics"
)

// Guard 是出站请求目标校验器。
// 构建后不可变，可安全地被任意多个 goroutine 并发使用。
type Guard struct {
	base *options
}

// New 创建 Guard，opts 覆盖硬编码默认值形成进程级默认配置。
// 选项应用遵循首错优先：任一选项非法即整体失败，返回 [ErrInvalidOptions]。
func New(opts ...Option) (*Guard, error) {
	base := defaultOptions()
	base.apply(opts)
	if base.err != nil {
		return nil, base.err
	}
	return &Guard{base: base}, nil
}

// Validate 校验 rawURL 是否为安全的请求目标。
//
// 放行返回 nil；拒绝返回 [*DeniedError]（detailed_error 关闭时统一为
// [ErrRestricted]）；URL 无法解析返回 [ErrInvalidURL]；
// 单次选项非法返回 [ErrInvalidOptions]。
// opts 仅对本次调用生效，覆盖构造时的默认配置。
func (g *Guard) Validate(ctx context.Context, rawURL string, opts ...Option) error {
	if ctx == nil {
		ctx = context.Background()
	}

	eff := g.base
	if len(opts) > 0 {
		eff = eff.clone()
		eff.apply(opts)
		if eff.err != nil {
			return eff.err
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	start := time.Now()
	denied := eff.decide(ctx, rawURL, u)
	eff.report(ctx, strings.ToLower(u.Scheme), denied, time.Since(start))

	if denied == nil {
		return nil
	}
	if !eff.detailed {
		// 对调用方隐藏具体原因，真实原因已进日志与指标。
		return &DeniedError{Reason: ReasonRestricted, URL: rawURL, Host: u.Hostname()}
	}
	return denied
}

// Allowed 是 [Guard.Validate] 的布尔形式，任何错误都视为不允许。
func (g *Guard) Allowed(ctx context.Context, rawURL string, opts ...Option) bool {
	return g.Validate(ctx, rawURL, opts...) == nil
}

// decide 执行固定顺序的短路判定，返回 nil 表示放行。
func (o *options) decide(ctx context.Context, rawURL string, u *url.URL) *DeniedError {
	scheme := strings.ToLower(u.Scheme)
	host := u.Hostname()

	if _, ok := o.schemes[scheme]; !ok {
		return &DeniedError{Reason: ReasonScheme, URL: rawURL, Host: host}
	}

	// 仅在存在地址类检查时才解析，纯 scheme 校验不触发 DNS。
	needsAddr := !o.allowlist.Empty() || !o.blocklist.Empty() || o.blockReserved
	var addr netip.Addr
	if needsAddr {
		addr = xresolve.First(ctx, o.resolver, host)
	}

	return o.checkAddr(rawURL, host, addr)
}

// checkAddr 执行范围类判定：allowlist 覆盖 → blocklist → 保留表。
func (o *options) checkAddr(rawURL, host string, addr netip.Addr) *DeniedError {
	if !o.allowlist.Empty() {
		if o.allowlist.Contains(addr) {
			return nil
		}
		return &DeniedError{Reason: ReasonAllowlist, URL: rawURL, Host: host, Addr: addr}
	}

	if o.blocklist.Contains(addr) {
		return &DeniedError{Reason: ReasonBlocklist, URL: rawURL, Host: host, Addr: addr}
	}

	if o.blockReserved && reservedSet.Contains(addr) {
		return &DeniedError{Reason: ReasonReserved, URL: rawURL, Host: host, Addr: addr}
	}

	return nil
}

// CheckAddr 以单个地址为输入执行范围类判定，跳过 scheme 检查，
// 不做 DNS 解析，也不产生日志与指标。
// 用于拨号时刻对实际连接目标的二次校验，收窄校验与连接之间的
// DNS 重绑定窗口。
func (g *Guard) CheckAddr(addr netip.Addr, opts ...Option) error {
	eff := g.base
	if len(opts) > 0 {
		eff = eff.clone()
		eff.apply(opts)
		if eff.err != nil {
			return eff.err
		}
	}

	a := addr.Unmap().WithZone("")
	denied := eff.checkAddr("", a.String(), a)
	if denied == nil {
		return nil
	}
	if !eff.detailed {
		return &DeniedError{Reason: ReasonRestricted, Host: a.String()}
	}
	return denied
}

// report 上报一次决策：指标记录每个判定，日志仅记录拒绝。
// 即使对调用方降级为 restricted，此处仍记录真实原因。
func (o *options) report(ctx context.Context, scheme string, denied *DeniedError, elapsed time.Duration) {
	d := xmetrics.Decision{
		Verdict:  xmetrics.VerdictAllowed,
		Scheme:   scheme,
		Duration: elapsed,
	}
	if denied != nil {
		d.Verdict = xmetrics.VerdictDenied
		d.Reason = denied.Reason.String()
	}
	xmetrics.Observe(ctx, o.observer, d)

	if denied == nil {
		return
	}
	logger := o.logger
	if logger == nil {
		logger = xlog.Default()
	}
	addr := ""
	if denied.Addr.IsValid() {
		addr = denied.Addr.String()
	}
	logger.Debug(ctx, "request target denied",
		xlog.Component("xssrf"),
		xlog.URL(denied.URL),
		xlog.Host(denied.Host),
		xlog.Scheme(scheme),
		xlog.Reason(denied.Reason.String()),
		xlog.Addr(addr),
		xlog.Duration(elapsed),
	)
}
