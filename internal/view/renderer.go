// Package view 负责把画板快照渲染成 htmx 使用的 HTML 页面和片段。
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"babysquares/internal/domain"
)

// ContentType 是所有 HTML 响应使用的 Content-Type。
const ContentType = "text/html; charset=utf-8"

//go:embed templates/*.tmpl
var templateFS embed.FS

// cellView 对应一个 <td>，OOB 为 true 时用于 websocket 推送。
type cellView struct {
	Row   int
	Col   int
	Value string
	OOB   bool
}

// labelView 对应一个轴标签，id 固定，设置变化时可以单独替换。
type labelView struct {
	ID   string
	Text string
	OOB  bool
}

type rowView struct {
	Label labelView
	Cells []cellView
}

// boardView 是页面和看板片段共用的模板数据。
type boardView struct {
	Title         string
	XLabels       []labelView // 已按列数截断或补齐
	XLabelsJoined string   // 回填到设置表单
	YLabelsJoined string
	Rows          []rowView
	OOB           bool
}

// Renderer 持有解析好的模板，可以被多个 goroutine 并发使用。
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer 解析内嵌的模板文件。
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("view: failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNewRenderer 与 NewRenderer 相同，解析失败时 panic。
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Page 渲染完整页面。
func (r *Renderer) Page(snap domain.Snapshot) ([]byte, error) {
	return r.execute("page", newBoardView(snap, false))
}

// BoardWrapper 渲染 #board-wrapper 片段，用于替换页面中的看板。
func (r *Renderer) BoardWrapper(snap domain.Snapshot) ([]byte, error) {
	return r.execute("board_wrapper", newBoardView(snap, false))
}

// Cell 渲染只读格子，点击后加载编辑表单。
func (r *Renderer) Cell(row, col int, value string) ([]byte, error) {
	return r.execute("cell", cellView{Row: row, Col: col, Value: value})
}

// EditCell 渲染格子的行内编辑表单。
func (r *Renderer) EditCell(row, col int, value string) ([]byte, error) {
	return r.execute("edit_cell", cellView{Row: row, Col: col, Value: value})
}

// LiveCell 渲染带 hx-swap-oob 的格子，推送给其他已打开的页面。
func (r *Renderer) LiveCell(row, col int, value string) ([]byte, error) {
	return r.execute("cell", cellView{Row: row, Col: col, Value: value, OOB: true})
}

// LiveBoard 渲染带 hx-swap-oob 的标题和看板，用于新连接的完整同步。
func (r *Renderer) LiveBoard(snap domain.Snapshot) ([]byte, error) {
	return r.execute("live_board", newBoardView(snap, true))
}

// LiveSettings 只渲染标题和轴标签，其他页面上正在编辑的格子不受影响。
func (r *Renderer) LiveSettings(snap domain.Snapshot) ([]byte, error) {
	bv := newBoardView(snap, true)
	for i := range bv.XLabels {
		bv.XLabels[i].OOB = true
	}
	for i := range bv.Rows {
		bv.Rows[i].Label.OOB = true
	}
	return r.execute("live_settings", bv)
}

func (r *Renderer) execute(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("view: failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// newBoardView 按画板的实际行列数生成视图，多余的标签被忽略，缺少的留空。
func newBoardView(snap domain.Snapshot, oob bool) boardView {
	cols := 0
	if len(snap.Cells) > 0 {
		cols = len(snap.Cells[0])
	}
	xLabels := make([]labelView, cols)
	for c := range xLabels {
		xLabels[c] = labelView{ID: fmt.Sprintf("x-label-%d", c), Text: snap.XLabel(c)}
	}

	rows := make([]rowView, len(snap.Cells))
	for r, cells := range snap.Cells {
		rv := rowView{
			Label: labelView{ID: fmt.Sprintf("y-label-%d", r), Text: snap.YLabel(r)},
			Cells: make([]cellView, len(cells)),
		}
		for c, value := range cells {
			rv.Cells[c] = cellView{Row: r, Col: c, Value: value}
		}
		rows[r] = rv
	}

	return boardView{
		Title:         snap.Title,
		XLabels:       xLabels,
		XLabelsJoined: strings.Join(snap.XLabels, ","),
		YLabelsJoined: strings.Join(snap.YLabels, ","),
		Rows:          rows,
		OOB:           oob,
	}
}
