package xconf

import (
	"fmt"

	"github.com/omeyang/xguard/pkg/guard/xssrf"
	"github.com/omeyang/xguard/pkg/util/xcidr"
)

// 守卫默认配置的键名，与选项一一对应。
const (
	KeySchemes       = "schemes"
	KeyBlockReserved = "block_reserved"
	KeyBlocklist     = "blocklist"
	KeyAllowlist     = "allowlist"
	KeyDetailedError = "detailed_error"
)

// GuardDefaults 是守卫默认配置的结构化映射，供需要整体读取的调用方使用。
// 指针与切片字段区分"未写出"（nil）与"显式空值"。
// 选项转换请使用 [GuardOptions]，它基于键存在性而非零值判断。
type GuardDefaults struct {
	Schemes       []string `koanf:"schemes"`
	BlockReserved *bool    `koanf:"block_reserved"`
	Blocklist     []string `koanf:"blocklist"`
	Allowlist     []string `koanf:"allowlist"`
	DetailedError *bool    `koanf:"detailed_error"`
}

// GuardOptions 把配置内容转换为守卫选项列表。
//
// path 指定配置子树（"" 表示根），便于把守卫配置嵌在更大的应用配置里。
// 缺失的键不产生选项（落到下层默认值）；显式写出的键——包括空列表——
// 产生覆盖选项。CIDR 列表在此处一次性校验，非法条目返回
// [ErrInvalidGuardConfig]，绝不延迟到判定路径。
func GuardOptions(cfg Config, path string) ([]xssrf.Option, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidGuardConfig)
	}
	k := cfg.Client()
	if path != "" {
		k = k.Cut(path)
	}

	var opts []xssrf.Option
	if k.Exists(KeySchemes) {
		opts = append(opts, xssrf.WithSchemes(k.Strings(KeySchemes)...))
	}
	if k.Exists(KeyBlockReserved) {
		opts = append(opts, xssrf.WithBlockReserved(k.Bool(KeyBlockReserved)))
	}
	if k.Exists(KeyBlocklist) {
		cidrs := k.Strings(KeyBlocklist)
		if _, err := xcidr.ParseSet(cidrs); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidGuardConfig, KeyBlocklist, err)
		}
		opts = append(opts, xssrf.WithBlocklist(cidrs...))
	}
	if k.Exists(KeyAllowlist) {
		cidrs := k.Strings(KeyAllowlist)
		if _, err := xcidr.ParseSet(cidrs); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidGuardConfig, KeyAllowlist, err)
		}
		opts = append(opts, xssrf.WithAllowlist(cidrs...))
	}
	if k.Exists(KeyDetailedError) {
		opts = append(opts, xssrf.WithDetailedError(k.Bool(KeyDetailedError)))
	}
	return opts, nil
}

// NewGuard 从配置构建 Guard 的便捷组合。
// extra 追加在文件选项之后（后应用者覆盖），
// 供调用方注入 resolver、logger 等运行时依赖。
func NewGuard(cfg Config, path string, extra ...xssrf.Option) (*xssrf.Guard, error) {
	opts, err := GuardOptions(cfg, path)
	if err != nil {
		return nil, err
	}
	return xssrf.New(append(opts, extra...)...)
}
