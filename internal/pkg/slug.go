package pkg

import "strings"

// Slugify 由展示名生成 slug：小写 + 空格换连字符。
// 不保证全局唯一，重复应用结果不变。
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
