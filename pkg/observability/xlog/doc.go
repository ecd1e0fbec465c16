// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、轮转）
//   - 动态级别调整（运行时热更新，无需重启）
//   - 全局 Logger 便利函数（脚手架场景）
//   - 守卫领域便捷属性（[Err]、[Host]、[URL]、[Reason] 等）
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，后续 Set 操作被跳过）：
//
//	logger, cleanup, err := xlog.New().
//	    SetLevel(xlog.LevelDebug).
//	    SetFormat("json").
//	    SetRotation(xlog.RotationConfig{Filename: "/var/log/guard.log", MaxSizeMB: 100}).
//	    Build()
//	if err != nil { ... }
//	defer cleanup()
//
// # 全局 Logger
//
// 适用于脚手架、小工具等简单场景，服务端推荐依赖注入。
//
//   - [Default]: 获取全局 Logger（惰性初始化：stderr、Info 级别、text 格式）
//   - [SetDefault]: 替换全局 Logger（nil 会被忽略）
//   - [ResetDefault]: 重置为未初始化状态（仅用于测试）
//   - [Debug]、[Info]、[Warn]、[Error]: 全局便利函数，签名为 (ctx, msg, ...slog.Attr)
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// 可通过 [ParseLevel] 从字符串解析。Level 实现 encoding.TextMarshaler/TextUnmarshaler，
// 支持配置文件直接序列化/反序列化。
//
// # 设计决策
//
//   - 方法签名只接受 slog.Attr，保证类型安全，避免隐式 key-value 转换开销
//   - 强制 context 传递，为后续追踪字段注入预留入口
//   - 派生 logger（With）共享父级的 LevelVar，动态级别变更同步生效
//   - 日志轮转通过 [gopkg.in/natefinch/lumberjack.v2] 实现，
//     Build 返回的 cleanup 函数负责关闭轮转写入器
package xlog
