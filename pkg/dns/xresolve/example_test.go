package xresolve_test

import (
	"context"
	"fmt"

	"github.com/omeyang/xguard/pkg/dns/xresolve"
)

func ExampleFirst() {
	r := xresolve.MustStatic(map[string][]string{
		"internal.example": {"10.1.2.3", "10.1.2.4"},
	})

	ctx := context.Background()
	fmt.Println(xresolve.First(ctx, r, "internal.example"))
	fmt.Println(xresolve.First(ctx, r, "192.168.1.1"))
	fmt.Println(xresolve.First(ctx, r, "unknown.example").IsValid())
	// Output:
	// 10.1.2.3
	// 192.168.1.1
	// false
}

func ExampleNewCached() {
	inner := xresolve.MustStatic(map[string][]string{
		"api.example": {"93.184.216.34"},
	})
	cached, _ := xresolve.NewCached(inner, xresolve.CacheConfig{Size: 128})

	addrs, _ := cached.LookupAddrs(context.Background(), "api.example")
	fmt.Println(addrs[0])
	fmt.Println(cached.Len())
	// Output:
	// 93.184.216.34
	// 1
}
