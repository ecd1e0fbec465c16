//go:build e2e

package e2e

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/omeyang/xguard/pkg/config/xconf"
	"github.com/omeyang/xguard/pkg/dns/xresolve"
	"github.com/omeyang/xguard/pkg/guard/xhttp"
	"github.com/omeyang/xguard/pkg/guard/xssrf"
	"github.com/omeyang/xguard/pkg/observability/xmetrics"
)

// TestGuardFlow 串联配置加载、热更新、判定与指标上报的完整链路。
func TestGuardFlow(t *testing.T) {
	ctx := context.Background()

	// 1. 配置文件 → Guard
	path := filepath.Join(t.TempDir(), "guard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blocklist:\n  - 8.8.8.0/24\n"), 0o600))

	cfg, err := xconf.New(path)
	require.NoError(t, err)

	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })
	observer, err := xmetrics.NewOTelObserver(xmetrics.WithMeterProvider(provider))
	require.NoError(t, err)

	resolver := xresolve.MustStatic(map[string][]string{
		"dns.example.com":    {"8.8.8.8"},
		"public.example.com": {"93.184.216.34"},
	})

	buildGuard := func() *xssrf.Guard {
		guard, gerr := xconf.NewGuard(cfg, "",
			xssrf.WithResolver(resolver),
			xssrf.WithObserver(observer),
		)
		require.NoError(t, gerr)
		return guard
	}
	guard := buildGuard()

	assert.NoError(t, guard.Validate(ctx, "https://public.example.com"))
	assert.ErrorIs(t, guard.Validate(ctx, "http://dns.example.com"), xssrf.ErrUnsafeBlocklist)
	assert.ErrorIs(t, guard.Validate(ctx, "http://127.0.0.1"), xssrf.ErrUnsafeReserved)

	// 2. 热更新：改写配置为 allowlist 覆盖模式
	reloaded := make(chan error, 8)
	w, err := xconf.Watch(cfg, func(_ xconf.Config, werr error) { reloaded <- werr },
		xconf.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()
	w.StartAsync()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("allowlist:\n  - 8.8.8.0/24\n"), 0o600))
	select {
	case werr := <-reloaded:
		require.NoError(t, werr)
	case <-time.After(5 * time.Second):
		t.Fatal("配置未重载")
	}

	guard = buildGuard()
	assert.NoError(t, guard.Validate(ctx, "http://dns.example.com"), "allowlist 命中放行")
	assert.ErrorIs(t, guard.Validate(ctx, "https://public.example.com"), xssrf.ErrUnsafeAllowlist)

	// 3. 指标：每次判定都被计数
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "xguard.decision.total" {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(5), total)
}

// TestGuardedClientFlow 验证守卫客户端端到端拦截真实 HTTP 请求。
func TestGuardedClientFlow(t *testing.T) {
	ctx := context.Background()

	var metaHit bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/jump":
			http.Redirect(w, r, "http://169.254.169.254/latest/meta-data/", http.StatusFound)
		case "/meta":
			metaHit = true
		default:
			_, _ = io.WriteString(w, "payload")
		}
	}))
	t.Cleanup(srv.Close)

	guard, err := xssrf.New(xssrf.WithAllowlist("127.0.0.0/8", "::1/128"))
	require.NoError(t, err)
	client := xhttp.NewClient(guard)
	t.Cleanup(client.CloseIdleConnections)

	// 直接请求放行
	resp, err := client.Get(ctx, srv.URL+"/data")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "payload", string(body))

	// 重定向到元数据端点被拦截
	resp, err = client.Get(ctx, srv.URL+"/jump")
	if resp != nil {
		_ = resp.Body.Close()
	}
	require.Error(t, err)
	assert.ErrorIs(t, err, xssrf.ErrDenied)
	assert.False(t, metaHit)
}
