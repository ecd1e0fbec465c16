// Package xssrf 提供出站请求目标校验，用于防御 SSRF（服务端请求伪造）。
//
// 校验对象是"请求意图"（URL），而非请求本身：包内不发起任何网络请求，
// 唯一的外部交互是通过注入的 [xresolve.Resolver] 做一次 DNS 解析。
//
// 判定顺序固定（短路，首个命中即返回）：
//  1. scheme 不在允许集合 → ErrUnsafeScheme
//  2. 配置了 allowlist → allowlist 是唯一裁决来源：
//     命中放行，未命中 ErrUnsafeAllowlist（blocklist 与保留表不再参与）
//  3. 地址命中 blocklist → ErrUnsafeBlocklist
//  4. block_reserved 开启且地址命中内置保留表 → ErrUnsafeReserved
//  5. 放行
//
// 选项三层覆盖：单次调用选项 > Guard 构造默认值 > 硬编码默认值。
// 函数式选项天然携带"是否显式设置"的信息：显式传入空值（如 WithAllowlist()）
// 同样覆盖下层，绝不回退。每次调用得到不可变快照，并发调用互不干扰。
//
// 设计决策:
//   - 解析失败返回零值地址，零值地址不命中任何网段：blocklist/保留表
//     不命中则放行，allowlist 模式下则拒绝。绝不把"解析失败"当作放行依据。
//   - detailed_error=false 时对调用方统一降级为 ErrRestricted，
//     但日志与指标仍记录真实原因，便于排障而不泄露给上游。
//   - CIDR 在选项应用时一次性编译校验，非法条目以 ErrInvalidOptions
//     在 New/Validate 入口暴露，绝不在判定中途出现。
//   - 内置保留表仅覆盖 IPv4；IPv6 地址仅受 allowlist/blocklist 约束，
//     如需限制请显式配置 blocklist。
//
// 已知局限：校验与实际连接之间存在 DNS 重绑定窗口（TOCTOU），
// 需要收窄时配合 pkg/guard/xhttp 的拨号复查使用。
package xssrf
