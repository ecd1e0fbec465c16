package xssrf

import (
	"context"
	"testing"

	"github.com/omeyang/xguard/pkg/dns/xresolve"
)

func BenchmarkValidate_PublicLiteral(b *testing.B) {
	guard, err := New()
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		_ = guard.Validate(ctx, "https://203.0.114.10/api")
	}
}

func BenchmarkValidate_ReservedDenied(b *testing.B) {
	guard, err := New()
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		_ = guard.Validate(ctx, "http://127.0.0.1:8080/admin")
	}
}

func BenchmarkValidate_StaticHostname(b *testing.B) {
	resolver := xresolve.MustStatic(map[string][]string{
		"api.example.com": {"93.184.216.34"},
	})
	guard, err := New(WithResolver(resolver))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		_ = guard.Validate(ctx, "https://api.example.com/v1")
	}
}

func BenchmarkValidate_PerCallOverride(b *testing.B) {
	guard, err := New()
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		_ = guard.Validate(ctx, "http://127.0.0.1", WithBlockReserved(false))
	}
}
