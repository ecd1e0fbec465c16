package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xguard/pkg/config/xconf"
	"github.com/omeyang/xguard/pkg/dns/xresolve"
	"github.com/omeyang/xguard/pkg/guard/xssrf"
)

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数或配置错误，统一映射为退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// checkResult 是单个 URL 的校验结果，--json 模式下逐行输出。
type checkResult struct {
	URL     string `json:"url"`
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createCheckCommand(),
		createRangesCommand(),
	}
}

// createCheckCommand 创建 check 子命令。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"c"},
		Usage:     "校验 URL 是否为安全的请求目标",
		ArgsUsage: "<url>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "守卫默认配置文件（YAML/JSON）",
			},
			&cli.StringSliceFlag{
				Name:  "scheme",
				Usage: "允许的 scheme（可重复，覆盖配置文件）",
			},
			&cli.StringSliceFlag{
				Name:  "allow",
				Usage: "允许列表 CIDR（可重复，覆盖配置文件）",
			},
			&cli.StringSliceFlag{
				Name:  "block",
				Usage: "拒绝列表 CIDR（可重复，覆盖配置文件）",
			},
			&cli.BoolFlag{
				Name:  "no-reserved",
				Usage: "关闭内置保留地址表",
			},
			&cli.BoolFlag{
				Name:  "generic",
				Usage: "拒绝原因统一输出为 restricted",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "DNS 解析超时",
				Value:   5 * time.Second,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "按 JSON Lines 输出结果",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdCheck(ctx, cmd)
		},
	}
}

// createRangesCommand 创建 ranges 子命令。
func createRangesCommand() *cli.Command {
	return &cli.Command{
		Name:    "ranges",
		Aliases: []string{"r"},
		Usage:   "打印内置保留地址表",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "按 JSON 数组输出",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdRanges(rootWriter(cmd), cmd.Bool("json"))
		},
	}
}

// cmdCheck 校验参数中的每个 URL，任一拒绝返回退出码 1。
func cmdCheck(ctx context.Context, cmd *cli.Command) error {
	urls := cmd.Args().Slice()
	if len(urls) == 0 {
		return &usageError{err: errors.New("check 命令需要至少一个 URL")}
	}

	guard, err := buildGuard(cmd)
	if err != nil {
		return &usageError{err: err}
	}

	out := rootWriter(cmd)
	asJSON := cmd.Bool("json")
	enc := json.NewEncoder(out)

	denied := false
	for _, rawURL := range urls {
		verr := guard.Validate(ctx, rawURL)
		if verr != nil && !errors.Is(verr, xssrf.ErrDenied) {
			// 无法解析的 URL 属于参数错误，不算拒绝
			return &usageError{err: verr}
		}

		result := checkResult{URL: rawURL, Allowed: verr == nil}
		if verr != nil {
			denied = true
			if reason, ok := xssrf.ReasonOf(verr); ok {
				result.Reason = reason.String()
			}
			result.Detail = verr.Error()
		}

		if asJSON {
			if err := enc.Encode(result); err != nil {
				return err
			}
			continue
		}
		if result.Allowed {
			fmt.Fprintf(out, "allowed  %s\n", result.URL)
		} else {
			fmt.Fprintf(out, "denied   %s (%s)\n", result.URL, result.Reason)
		}
	}

	if denied {
		return &exitError{code: 1}
	}
	return nil
}

// buildGuard 按"配置文件 → 命令行 flag"的覆盖顺序构建 Guard。
func buildGuard(cmd *cli.Command) (*xssrf.Guard, error) {
	var opts []xssrf.Option

	if path := cmd.String("config"); path != "" {
		cfg, err := xconf.New(path)
		if err != nil {
			return nil, err
		}
		opts, err = xconf.GuardOptions(cfg, "")
		if err != nil {
			return nil, err
		}
	}

	// flag 覆盖配置文件：仅显式设置的 flag 产生选项
	if cmd.IsSet("scheme") {
		opts = append(opts, xssrf.WithSchemes(cmd.StringSlice("scheme")...))
	}
	if cmd.IsSet("allow") {
		opts = append(opts, xssrf.WithAllowlist(cmd.StringSlice("allow")...))
	}
	if cmd.IsSet("block") {
		opts = append(opts, xssrf.WithBlocklist(cmd.StringSlice("block")...))
	}
	if cmd.Bool("no-reserved") {
		opts = append(opts, xssrf.WithBlockReserved(false))
	}
	if cmd.Bool("generic") {
		opts = append(opts, xssrf.WithDetailedError(false))
	}

	resolver := xresolve.New(xresolve.WithTimeout(cmd.Duration("timeout")))
	opts = append(opts, xssrf.WithResolver(resolver))

	return xssrf.New(opts...)
}

// rootWriter 返回应用输出目标，未设置时退回标准输出。
func rootWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// cmdRanges 打印内置保留地址表。
func cmdRanges(out io.Writer, asJSON bool) error {
	ranges := xssrf.ReservedRanges()
	if asJSON {
		return json.NewEncoder(out).Encode(ranges)
	}
	for _, r := range ranges {
		fmt.Fprintln(out, r)
	}
	return nil
}
