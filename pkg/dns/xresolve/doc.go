// Package xresolve 提供可插拔的主机名解析能力。
//
// xresolve 把"主机名 → IP 地址"抽象为单方法接口 [Resolver]，
// 供上层守卫逻辑注入替换：生产环境使用系统解析器，
// 测试使用 [Static] 确定性解析器，高频场景使用 [Cached] 装饰器。
//
// # 核心功能
//
//   - resolver.go: [Resolver] 接口、[NetResolver] 系统解析器实现、[Default] 全局实例
//   - static.go: [Static] 确定性解析器（测试替身 / 固定映射）
//   - cached.go: [Cached] 带 TTL 的 LRU 缓存装饰器
//   - first.go: [First] 地址选择（字面量直通 + DNS 委托 + 取首个结果）
//
// # 快速示例
//
// 解析主机名并选择单个地址：
//
//	addr := xresolve.First(ctx, xresolve.Default(), "example.com")
//	if !addr.IsValid() {
//	    // 解析失败：地址不可用，按"不匹配任何网段"处理
//	}
//
// 注入确定性解析器（测试）：
//
//	r := xresolve.NewStatic(map[string][]string{
//	    "internal.example": {"10.1.2.3"},
//	})
//	addr := xresolve.First(ctx, r, "internal.example")  // 10.1.2.3
//
// # 设计决策
//
//   - 解析失败不是错误升级路径：[First] 返回零值 [netip.Addr]，
//     调用方必须把"无地址"当作"永不匹配任何网段"，而不是"放行"
//   - 确定性选择首个地址：不做轮询、不做多地址回退（已知局限，文档化）
//   - 不重试：DNS 失败视为"本次无可用地址"，重试策略属于解析器实现自身
//   - [NetResolver] 内置单次查询超时（默认 5s），返回失败而非无限阻塞；
//     取消与截止时间通过 context 传入
//   - [Cached] 仅缓存成功结果（正缓存）：缓存是纯优化，
//     不得把一次瞬时故障放大为 TTL 周期内的持续故障
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := r.LookupAddrs(ctx, "no-such-host.invalid")
//	if errors.Is(err, xresolve.ErrLookupFailed) {
//	    // 解析失败
//	}
package xresolve
