package xconf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xguard/pkg/dns/xresolve"
	"github.com/omeyang/xguard/pkg/guard/xssrf"
)

func TestGuardOptions_FullFile(t *testing.T) {
	cfg, err := NewFromBytes([]byte(guardYAML), FormatYAML)
	require.NoError(t, err)

	opts, err := GuardOptions(cfg, "")
	require.NoError(t, err)
	assert.Len(t, opts, 5, "每个写出的键产生一个选项")

	guard, err := xssrf.New(opts...)
	require.NoError(t, err)
	ctx := context.Background()

	// schemes: [https]
	assert.ErrorIs(t, guard.Validate(ctx, "http://1.1.1.1"), xssrf.ErrDenied)
	// blocklist: 8.8.8.0/24，detailed_error: false 统一降级
	err = guard.Validate(ctx, "https://8.8.8.8")
	assert.ErrorIs(t, err, xssrf.ErrRestricted)
	assert.NotErrorIs(t, err, xssrf.ErrUnsafeBlocklist)
	// allowlist: [] 显式为空，不启用覆盖层
	assert.NoError(t, guard.Validate(ctx, "https://1.1.1.1"))
}

func TestGuardOptions_AbsentKeysProduceNothing(t *testing.T) {
	cfg, err := NewFromBytes([]byte(`{}`), FormatJSON)
	require.NoError(t, err)

	opts, err := GuardOptions(cfg, "")
	require.NoError(t, err)
	assert.Empty(t, opts, "缺失的键落到下层默认值")
}

func TestGuardOptions_EmptySchemesDeniesAll(t *testing.T) {
	cfg, err := NewFromBytes([]byte(`{"schemes":[]}`), FormatJSON)
	require.NoError(t, err)

	opts, err := GuardOptions(cfg, "")
	require.NoError(t, err)
	require.Len(t, opts, 1)

	guard, err := xssrf.New(opts...)
	require.NoError(t, err)
	assert.ErrorIs(t, guard.Validate(context.Background(), "https://1.1.1.1"), xssrf.ErrUnsafeScheme)
}

func TestGuardOptions_InvalidCIDRFailsAtLoad(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad blocklist entry", data: `{"blocklist":["not-a-cidr"]}`},
		{name: "bad allowlist entry", data: `{"allowlist":["10.0.0.0/99"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewFromBytes([]byte(tt.data), FormatJSON)
			require.NoError(t, err)

			_, err = GuardOptions(cfg, "")
			assert.ErrorIs(t, err, ErrInvalidGuardConfig)
		})
	}
}

func TestGuardOptions_Subtree(t *testing.T) {
	data := []byte(`
app:
  name: crawler
guard:
  schemes:
    - https
  block_reserved: false
`)
	cfg, err := NewFromBytes(data, FormatYAML)
	require.NoError(t, err)

	opts, err := GuardOptions(cfg, "guard")
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	guard, err := xssrf.New(opts...)
	require.NoError(t, err)
	ctx := context.Background()
	assert.NoError(t, guard.Validate(ctx, "https://127.0.0.1"))
	assert.ErrorIs(t, guard.Validate(ctx, "http://1.1.1.1"), xssrf.ErrUnsafeScheme)
}

func TestGuardOptions_NilConfig(t *testing.T) {
	_, err := GuardOptions(nil, "")
	assert.ErrorIs(t, err, ErrInvalidGuardConfig)
}

func TestNewGuard(t *testing.T) {
	resolver := xresolve.MustStatic(map[string][]string{
		"internal.example.com": {"10.1.2.3"},
	})
	cfg, err := NewFromBytes([]byte(`{"block_reserved":true}`), FormatJSON)
	require.NoError(t, err)

	guard, err := NewGuard(cfg, "", xssrf.WithResolver(resolver))
	require.NoError(t, err)

	assert.ErrorIs(t, guard.Validate(context.Background(), "http://internal.example.com"), xssrf.ErrUnsafeReserved)
}

func TestNewGuard_PropagatesConfigError(t *testing.T) {
	cfg, err := NewFromBytes([]byte(`{"blocklist":["bad"]}`), FormatJSON)
	require.NoError(t, err)

	guard, err := NewGuard(cfg, "")
	assert.Nil(t, guard)
	assert.ErrorIs(t, err, ErrInvalidGuardConfig)
}
