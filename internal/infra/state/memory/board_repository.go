package memorystate

import (
	"context"
	"fmt"
	"sync"

	"babysquares/internal/domain"
	"babysquares/internal/repository"
)

// BoardRepository 是 BoardRepository 接口的进程内实现。
// 状态只存在于内存中，进程重启后恢复默认值。
type BoardRepository struct {
	mu      sync.RWMutex // 保证读到的永远是完整写入的状态
	rows    int
	cols    int
	title   string
	xLabels []string
	yLabels []string
	cells   [][]string
}

// 编译期检查接口实现
var _ repository.BoardRepository = (*BoardRepository)(nil)

// NewBoardRepository 创建 rows × cols 的空画板，轴标签为 "0".."n-1"。
func NewBoardRepository(rows, cols int, title string) *BoardRepository {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("board dimensions must be positive, got %dx%d", rows, cols))
	}
	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, cols)
	}
	return &BoardRepository{
		rows:    rows,
		cols:    cols,
		title:   title,
		xLabels: domain.DefaultLabels(cols),
		yLabels: domain.DefaultLabels(rows),
		cells:   cells,
	}
}

// NewDefaultBoardRepository 创建 10×10、标题为 "Babysquares" 的画板。
func NewDefaultBoardRepository() *BoardRepository {
	return NewBoardRepository(domain.DefaultRows, domain.DefaultCols, domain.DefaultTitle)
}

func (r *BoardRepository) Dimensions() (int, int) {
	return r.rows, r.cols
}

func (r *BoardRepository) checkBounds(row, col int) error {
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", repository.ErrOutOfBounds, row, col, r.rows, r.cols)
	}
	return nil
}

// GetCell 读取单个格子。
func (r *BoardRepository) GetCell(ctx context.Context, row, col int) (string, error) {
	if err := r.checkBounds(row, col); err != nil {
		return "", err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cells[row][col], nil
}

// SetCell 覆盖单个格子，不做冲突检测。
func (r *BoardRepository) SetCell(ctx context.Context, row, col int, value string) error {
	if err := r.checkBounds(row, col); err != nil {
		return err
	}
	r.mu.Lock()
	r.cells[row][col] = value
	r.mu.Unlock()
	return nil
}

// Snapshot 在读锁下深拷贝全部状态。
func (r *BoardRepository) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(), nil
}

// UpdateSettings 按字段替换标题和轴标签，空字段保持不变。
// 标签数量与行列数不一致时照常接受。
func (r *BoardRepository) UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if update.Title != "" {
		r.title = update.Title
	}
	if update.XLabels != "" {
		r.xLabels = domain.ParseLabels(update.XLabels)
	}
	if update.YLabels != "" {
		r.yLabels = domain.ParseLabels(update.YLabels)
	}
	return r.snapshotLocked(), nil
}

// snapshotLocked 调用方必须持有 mu。
func (r *BoardRepository) snapshotLocked() domain.Snapshot {
	cells := make([][]string, len(r.cells))
	for i, row := range r.cells {
		cells[i] = append([]string(nil), row...)
	}
	return domain.Snapshot{
		Title:   r.title,
		XLabels: append([]string(nil), r.xLabels...),
		YLabels: append([]string(nil), r.yLabels...),
		Cells:   cells,
	}
}
