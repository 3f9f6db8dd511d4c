package _string

import (
	"strings"
)

// Empty 是否为空白字符串
func Empty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FirstNotEmpty 返回第1个非空字符串
func FirstNotEmpty(items ...string) string {
	for _, item := range items {
		if !Empty(item) {
			return item
		}
	}

	return ``
}
