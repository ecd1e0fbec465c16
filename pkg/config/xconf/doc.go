// Package xconf 提供守卫默认配置的加载、热更新与选项转换。
//
// 配置文件承载进程级守卫默认值（第二层），键名与选项一一对应：
//
//	schemes:
//	  - https
//	block_reserved: true
//	blocklist:
//	  - 8.8.8.0/24
//	allowlist: []
//	detailed_error: false
//
// 三层覆盖语义依赖"键是否写出"：缺失的键不产生选项（落到硬编码默认值），
// 显式写出的空列表同样覆盖下层。[GuardOptions] 基于 koanf 的 Exists
// 做存在性判断，把文件内容转换为 []xssrf.Option。
//
// 支持 YAML 与 JSON（按扩展名自动识别），基于 koanf 实现；
// [Watch] 基于 fsnotify 监视文件变更并防抖重载，适配 K8s ConfigMap
// 原子替换与编辑器先删后建的保存方式。
//
// 设计决策: CIDR 条目在加载时一次性校验，非法条目让 GuardOptions
// 直接失败，绝不让坏配置流入判定路径。
package xconf
