// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmac: MAC 地址规范文本的严格校验与解析
//
// 设计原则：
//   - 纯函数、无全局可变状态、并发安全
//   - 对任意外部输入不 panic，错误以哨兵变量返回
package util
