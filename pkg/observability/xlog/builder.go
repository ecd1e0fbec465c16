package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Format 定义日志输出格式。
const (
	// FormatText 人类可读的 key=value 格式。
	FormatText = "text"

	// FormatJSON 每行一个 JSON 对象，适合日志采集。
	FormatJSON = "json"
)

// RotationConfig 定义日志轮转配置（lumberjack）。
type RotationConfig struct {
	// Filename 日志文件路径，必填。
	Filename string

	// MaxSizeMB 单个文件最大体积（MB），0 使用 lumberjack 默认值（100MB）。
	MaxSizeMB int

	// MaxBackups 保留的旧文件数量，0 表示全部保留。
	MaxBackups int

	// MaxAgeDays 旧文件保留天数，0 表示不按时间清理。
	MaxAgeDays int

	// Compress 是否压缩旧文件。
	Compress bool
}

// Builder 以链式调用构建 Logger。
// first-error-wins：遇到第一个配置错误后，后续 Set 操作被跳过。
// Builder 为一次性使用：调用 [Builder.Build] 后不可复用，需通过 [New] 创建新实例。
type Builder struct {
	level    Level
	format   string
	output   io.Writer
	rotation *RotationConfig
	err      error
	built    bool
}

// New 创建 Builder。默认配置：stderr、Info 级别、text 格式。
func New() *Builder {
	return &Builder{
		level:  LevelInfo,
		format: FormatText,
		output: os.Stderr,
	}
}

// SetLevel 设置初始日志级别。
func (b *Builder) SetLevel(level Level) *Builder {
	if b.err != nil {
		return b
	}
	b.level = level
	return b
}

// SetFormat 设置输出格式（"text" 或 "json"，大小写不敏感）。
func (b *Builder) SetFormat(format string) *Builder {
	if b.err != nil {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText:
		b.format = FormatText
	case FormatJSON:
		b.format = FormatJSON
	default:
		b.err = fmt.Errorf("xlog: unknown format %q", format)
	}
	return b
}

// SetOutput 设置输出目标。与 SetRotation 互斥，后设置的生效。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if b.err != nil {
		return b
	}
	if w == nil {
		b.err = fmt.Errorf("xlog: nil output writer")
		return b
	}
	b.output = w
	b.rotation = nil
	return b
}

// SetRotation 启用文件输出与轮转。与 SetOutput 互斥，后设置的生效。
func (b *Builder) SetRotation(cfg RotationConfig) *Builder {
	if b.err != nil {
		return b
	}
	if cfg.Filename == "" {
		b.err = fmt.Errorf("xlog: rotation filename is required")
		return b
	}
	b.rotation = &cfg
	return b
}

// Build 构建 Logger。
// 返回的 cleanup 函数负责释放资源（关闭轮转写入器），无资源时为空操作。
func (b *Builder) Build() (LoggerWithLevel, func(), error) {
	if b.err != nil {
		return nil, nil, b.err
	}
	if b.built {
		return nil, nil, fmt.Errorf("xlog: builder already used, create a new one with New()")
	}
	b.built = true

	output := b.output
	cleanup := func() {}
	if b.rotation != nil {
		lj := &lumberjack.Logger{
			Filename:   b.rotation.Filename,
			MaxSize:    b.rotation.MaxSizeMB,
			MaxBackups: b.rotation.MaxBackups,
			MaxAge:     b.rotation.MaxAgeDays,
			Compress:   b.rotation.Compress,
		}
		output = lj
		cleanup = func() { _ = lj.Close() }
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.Level(b.level))
	opts := &slog.HandlerOptions{Level: levelVar}

	var handler slog.Handler
	if b.format == FormatJSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return &xlogger{
		handler:  handler,
		levelVar: levelVar,
	}, cleanup, nil
}
