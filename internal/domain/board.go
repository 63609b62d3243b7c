package domain

import (
	"strconv"
	"strings"
)

// 画板默认值，进程启动时使用，重启后恢复。
const (
	DefaultRows  = 10
	DefaultCols  = 10
	DefaultTitle = "Babysquares"
)

// Snapshot 是某一时刻画板完整状态的只读副本，用于渲染。
// 调用方拿到的切片与实时状态不共享底层数组。
type Snapshot struct {
	Title   string
	XLabels []string   // 列标签，期望长度为 cols
	YLabels []string   // 行标签，期望长度为 rows
	Cells   [][]string // Cells[row][col]，空字符串表示未认领
}

// XLabel 返回第 col 列的标签，标签不足时返回空字符串。
func (s Snapshot) XLabel(col int) string {
	if col < 0 || col >= len(s.XLabels) {
		return ""
	}
	return s.XLabels[col]
}

// YLabel 返回第 row 行的标签，标签不足时返回空字符串。
func (s Snapshot) YLabel(row int) string {
	if row < 0 || row >= len(s.YLabels) {
		return ""
	}
	return s.YLabels[row]
}

// SettingsUpdate 描述一次画板设置修改。
// 空字符串表示该字段未提交，对应的值保持不变。
type SettingsUpdate struct {
	Title   string
	XLabels string // 逗号分隔
	YLabels string // 逗号分隔
}

// IsEmpty 判断本次修改是否不包含任何字段。
func (u SettingsUpdate) IsEmpty() bool {
	return u.Title == "" && u.XLabels == "" && u.YLabels == ""
}

// ParseLabels 按逗号拆分标签并去掉两端空白。
// 不校验数量，没有逗号时整个字符串就是一个标签。
func ParseLabels(raw string) []string {
	parts := strings.Split(raw, ",")
	labels := make([]string, len(parts))
	for i, p := range parts {
		labels[i] = strings.TrimSpace(p)
	}
	return labels
}

// DefaultLabels 生成 "0".."n-1" 的默认轴标签。
func DefaultLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}
