package xresolve

import "errors"

var (
	// ErrLookupFailed 表示主机名解析失败或返回空结果。
	ErrLookupFailed = errors.New("xresolve: lookup failed")

	// ErrNilResolver 表示内层解析器为 nil。
	ErrNilResolver = errors.New("xresolve: nil inner resolver")

	// ErrInvalidSize 表示缓存容量不合法。
	ErrInvalidSize = errors.New("xresolve: cache size must be positive")

	// ErrInvalidTTL 表示缓存 TTL 不合法。
	ErrInvalidTTL = errors.New("xresolve: cache TTL must not be negative")
)
