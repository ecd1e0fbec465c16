package xhttp

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"

	"github.com/omeyang/xguard/pkg/guard/xssrf"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultDialTimeout = 10 * time.Second
	maxRedirects       = 10
)

// Client 是带目标校验的 HTTP 客户端。
// 每个请求（含每一跳重定向）先过 Guard.Validate，
// 实际拨号地址再过 Guard.CheckAddr。并发安全。
type Client struct {
	guard *xssrf.Guard
	hc    *http.Client
}

type clientOptions struct {
	timeout   time.Duration
	transport *http.Transport
}

// Option 定义客户端配置选项。
type Option func(*clientOptions)

// WithTimeout 设置整个请求（含重定向与读响应体）的超时，非正值忽略。
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithTransport 设置基础 Transport（会被 Clone，拨号复查始终注入），
// nil 时忽略。
func WithTransport(t *http.Transport) Option {
	return func(o *clientOptions) {
		if t != nil {
			o.transport = t
		}
	}
}

// NewClient 创建客户端。guard 为 nil 时使用包级默认 Guard。
func NewClient(guard *xssrf.Guard, opts ...Option) *Client {
	if guard == nil {
		guard = xssrf.Default()
	}
	cfg := &clientOptions{timeout: defaultTimeout}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	c := &Client{guard: guard}

	transport := cfg.transport
	if transport == nil {
		if base, ok := http.DefaultTransport.(*http.Transport); ok {
			transport = base
		} else {
			transport = &http.Transport{}
		}
	}
	transport = transport.Clone()

	dialer := &net.Dialer{
		Timeout: defaultDialTimeout,
		Control: c.dialControl,
	}
	transport.DialContext = dialer.DialContext

	c.hc = &http.Client{
		Timeout:       cfg.timeout,
		Transport:     transport,
		CheckRedirect: c.checkRedirect,
	}
	return c
}

// Do 校验请求目标后发送请求。
// 任何拒绝以 xssrf 的错误值返回，请求不会发出。
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if req == nil || req.URL == nil {
		return nil, ErrNilRequest
	}
	if err := c.guard.Validate(req.Context(), req.URL.String()); err != nil {
		return nil, err
	}
	return c.hc.Do(req)
}

// Get 校验后发起 GET 请求。
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("xhttp: build request: %w", err)
	}
	return c.Do(req)
}

// Post 校验后发起 POST 请求。
func (c *Client) Post(ctx context.Context, url, contentType string, body io.Reader) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("xhttp: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.Do(req)
}

// HTTPClient 返回底层 http.Client，用于需要标准接口的调用方
// （如第三方 SDK 注入）。校验逻辑已固化在 Transport 与 CheckRedirect 中，
// 但直接使用时首跳 URL 不再过 Validate，只有拨号复查兜底。
func (c *Client) HTTPClient() *http.Client {
	return c.hc
}

// CloseIdleConnections 关闭空闲连接。
func (c *Client) CloseIdleConnections() {
	c.hc.CloseIdleConnections()
}

// checkRedirect 对每一跳重定向目标重新校验。
func (c *Client) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return ErrTooManyRedirects
	}
	return c.guard.Validate(req.Context(), req.URL.String())
}

// dialControl 在 TCP 连接建立前对实际拨号目标做地址级复查。
// 已通过校验的域名在拨号时刻重新解析可能得到不同地址（DNS 重绑定），
// 此处用相同的范围规则拦截。
func (c *Client) dialControl(_, address string, _ syscall.RawConn) error {
	ap, err := netip.ParseAddrPort(address)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrDialAddress, address, err)
	}
	return c.guard.CheckAddr(ap.Addr())
}
