package xhttp

import "errors"

var (
	// ErrNilRequest 表示传入了 nil 请求。
	ErrNilRequest = errors.New("xhttp: nil request")

	// ErrDialAddress 表示拨号地址无法解析为 IP:port。
	ErrDialAddress = errors.New("xhttp: invalid dial address")

	// ErrTooManyRedirects 表示重定向次数超过上限。
	ErrTooManyRedirects = errors.New("xhttp: too many redirects")
)
