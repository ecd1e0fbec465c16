// xguardctl 是出站请求目标校验的命令行工具。
//
// 用法:
//
//	xguardctl <命令> [命令参数]
//
// 命令:
//
//	check <url>...  校验一个或多个 URL 是否为安全的请求目标
//	ranges          打印内置保留地址表
//	help            显示帮助信息
//
// check 命令选项:
//
//	-c, --config    守卫默认配置文件（YAML/JSON）
//	--scheme        允许的 scheme（可重复，覆盖配置文件）
//	--allow         允许列表 CIDR（可重复，覆盖配置文件）
//	--block         拒绝列表 CIDR（可重复，覆盖配置文件）
//	--no-reserved   关闭内置保留地址表
//	--generic       拒绝原因统一输出为 restricted
//	-t, --timeout   DNS 解析超时（默认 5s）
//	--json          按 JSON Lines 输出结果
//
// 退出码:
//
//	0: 全部 URL 放行
//	1: 任一 URL 被拒绝
//	2: 参数或配置错误（非法 CIDR、无法解析的 URL、坏配置文件等）
//
// 示例:
//
//	xguardctl check https://example.com
//	xguardctl check --config guard.yaml http://10.1.2.3
//	xguardctl check --allow 10.0.0.0/8 http://10.1.2.3 http://8.8.8.8
//	xguardctl check --json http://169.254.169.254 | jq .reason
//	xguardctl ranges
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "xguardctl",
		Usage:          "出站请求目标校验工具",
		Version:        fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr.err)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
