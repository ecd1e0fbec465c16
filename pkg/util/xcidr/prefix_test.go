package xcidr

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ipv4 /8", "10.0.0.0/8", "10.0.0.0/8"},
		{"ipv4 /32", "192.168.1.1/32", "192.168.1.1/32"},
		{"ipv4 /0", "0.0.0.0/0", "0.0.0.0/0"},
		{"host bits masked", "192.168.1.1/24", "192.168.1.0/24"},
		{"leading whitespace", "  10.0.0.0/8", "10.0.0.0/8"},
		{"trailing whitespace", "10.0.0.0/8  ", "10.0.0.0/8"},
		{"ipv6 /128", "::1/128", "::1/128"},
		{"ipv6 /0", "::/0", "::/0"},
		{"ipv6 ula", "fc00::/7", "fc00::/7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, err := ParsePrefix(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, prefix.String())
		})
	}
}

func TestParsePrefix_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bare address", "10.0.0.1"},
		{"garbage", "not-a-cidr"},
		{"bits too large", "10.0.0.0/33"},
		{"negative bits", "10.0.0.0/-1"},
		{"missing bits", "10.0.0.0/"},
		{"ipv6 bits too large", "::1/129"},
		{"zone id", "fe80::1%eth0/64"},
		{"octet out of range", "10.0.0.256/8"},
		{"mapped shorter than /96", "::ffff:10.0.0.0/64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePrefix(tt.input)
			assert.ErrorIs(t, err, ErrInvalidCIDR)
		})
	}
}

func TestParsePrefix_MappedNormalized(t *testing.T) {
	prefix, err := ParsePrefix("::ffff:192.168.1.0/120")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.0/24", prefix.String())
	assert.True(t, prefix.Addr().Is4())
}

func TestMustParsePrefix(t *testing.T) {
	assert.NotPanics(t, func() {
		p := MustParsePrefix("127.0.0.0/8")
		assert.Equal(t, "127.0.0.0/8", p.String())
	})
	assert.Panics(t, func() {
		MustParsePrefix("bogus")
	})
}

func TestContains(t *testing.T) {
	prefix := MustParsePrefix("10.0.0.0/8")

	tests := []struct {
		name string
		addr netip.Addr
		want bool
	}{
		{"network address", netip.MustParseAddr("10.0.0.0"), true},
		{"inside", netip.MustParseAddr("10.1.2.3"), true},
		{"broadcast edge", netip.MustParseAddr("10.255.255.255"), true},
		{"below", netip.MustParseAddr("9.255.255.255"), false},
		{"above", netip.MustParseAddr("11.0.0.0"), false},
		{"ipv6 never matches v4 prefix", netip.MustParseAddr("::1"), false},
		{"mapped unmapped before test", netip.MustParseAddr("::ffff:10.1.2.3"), true},
		{"invalid address", netip.Addr{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(prefix, tt.addr))
		})
	}
}

func TestContains_BoundaryPrefixes(t *testing.T) {
	t.Run("slash zero matches whole family", func(t *testing.T) {
		all := MustParsePrefix("0.0.0.0/0")
		assert.True(t, Contains(all, netip.MustParseAddr("0.0.0.0")))
		assert.True(t, Contains(all, netip.MustParseAddr("255.255.255.255")))
		assert.True(t, Contains(all, netip.MustParseAddr("8.8.8.8")))
		// 不跨地址族
		assert.False(t, Contains(all, netip.MustParseAddr("2001:db8::1")))
	})

	t.Run("slash 32 matches exactly one", func(t *testing.T) {
		one := MustParsePrefix("192.168.1.1/32")
		assert.True(t, Contains(one, netip.MustParseAddr("192.168.1.1")))
		assert.False(t, Contains(one, netip.MustParseAddr("192.168.1.2")))
		assert.False(t, Contains(one, netip.MustParseAddr("192.168.1.0")))
	})

	t.Run("ipv6 slash 128", func(t *testing.T) {
		one := MustParsePrefix("::1/128")
		assert.True(t, Contains(one, netip.MustParseAddr("::1")))
		assert.False(t, Contains(one, netip.MustParseAddr("::2")))
	})
}

func TestContains_CrossFamily(t *testing.T) {
	v6 := MustParsePrefix("fc00::/7")
	assert.False(t, Contains(v6, netip.MustParseAddr("10.0.0.1")))

	v4 := MustParsePrefix("10.0.0.0/8")
	assert.False(t, Contains(v4, netip.MustParseAddr("fc00::1")))
}

func TestContains_InvalidPrefix(t *testing.T) {
	assert.False(t, Contains(netip.Prefix{}, netip.MustParseAddr("10.0.0.1")))
}
