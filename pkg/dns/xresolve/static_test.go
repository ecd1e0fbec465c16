package xresolve

import (
	"context"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatic(t *testing.T) {
	r, err := NewStatic(map[string][]string{
		"internal.example": {"10.1.2.3", "10.1.2.4"},
		"six.example":      {"2001:db8::1"},
	})
	require.NoError(t, err)

	addrs, err := r.LookupAddrs(context.Background(), "internal.example")
	require.NoError(t, err)
	assert.Equal(t, []netip.Addr{
		netip.MustParseAddr("10.1.2.3"),
		netip.MustParseAddr("10.1.2.4"),
	}, addrs)
}

func TestNewStatic_InvalidAddress(t *testing.T) {
	_, err := NewStatic(map[string][]string{
		"bad.example": {"not-an-ip"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.example")
}

func TestStatic_UnknownHost(t *testing.T) {
	r := MustStatic(map[string][]string{"known.example": {"10.0.0.1"}})

	_, err := r.LookupAddrs(context.Background(), "unknown.example")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestStatic_EmptyAddressList(t *testing.T) {
	r := MustStatic(map[string][]string{"empty.example": {}})

	_, err := r.LookupAddrs(context.Background(), "empty.example")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestStatic_ResultIsCopy(t *testing.T) {
	r := MustStatic(map[string][]string{"h.example": {"10.0.0.1"}})

	first, err := r.LookupAddrs(context.Background(), "h.example")
	require.NoError(t, err)
	first[0] = netip.MustParseAddr("8.8.8.8")

	second, err := r.LookupAddrs(context.Background(), "h.example")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), second[0])
}

func TestMustStatic_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustStatic(map[string][]string{"bad": {"bogus"}})
	})
}
