// Package xmetrics 提供守卫决策的统一观测接口。
//
// xmetrics 把"一次校验决策"抽象为 [Observer] 接口，
// 供守卫逻辑注入替换：生产环境使用 OpenTelemetry 实现（[NewOTelObserver]），
// 不需要观测时使用 [NoopObserver]。
//
// # 指标
//
// OTel 实现导出两个指标：
//
//   - xguard.decision.total (counter): 按 verdict（allowed/denied）与
//     reason（拒绝原因，放行时为空）维度计数
//   - xguard.decision.duration (histogram, 秒): 单次决策耗时，含地址解析
//
// # 快速示例
//
//	obs, err := xmetrics.NewOTelObserver()
//	if err != nil { ... }
//	guard, err := xssrf.New(xssrf.WithObserver(obs))
//
// # 设计决策
//
//   - 观测失败永不影响决策结果：Observer 实现不返回 error，内部自行兜底
//   - [Observe] 包级辅助函数对 nil Observer / nil ctx 做归一化，
//     调用方无需在热路径上做判空
package xmetrics
