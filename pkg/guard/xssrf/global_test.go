package xssrf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LazyInit(t *testing.T) {
	t.Cleanup(ResetDefault)
	ResetDefault()

	g := Default()
	require.NotNil(t, g)
	assert.Same(t, g, Default(), "重复获取返回同一实例")
}

func TestSetDefault(t *testing.T) {
	t.Cleanup(ResetDefault)
	ctx := context.Background()

	// 硬编码默认配置拒绝回环地址。
	assert.ErrorIs(t, Validate(ctx, "http://127.0.0.1"), ErrUnsafeReserved)
	assert.False(t, Allowed(ctx, "http://127.0.0.1"))
	assert.True(t, Allowed(ctx, "https://230.10.10.10"))

	custom, err := New(WithSchemes("gopher"), WithBlockReserved(false))
	require.NoError(t, err)
	SetDefault(custom)

	assert.True(t, Allowed(ctx, "gopher://127.0.0.1"))
	assert.ErrorIs(t, Validate(ctx, "https://230.10.10.10"), ErrUnsafeScheme)

	ResetDefault()
	assert.True(t, Allowed(ctx, "https://230.10.10.10"))
}

func TestSetDefault_NilIgnored(t *testing.T) {
	t.Cleanup(ResetDefault)

	g := Default()
	SetDefault(nil)
	assert.Same(t, g, Default())
}

func TestGlobal_PerCallOptions(t *testing.T) {
	t.Cleanup(ResetDefault)

	err := Validate(context.Background(), "http://127.0.0.1", WithBlockReserved(false))
	assert.NoError(t, err)
}
