package repository

import (
	"context"

	"babysquares/internal/domain"
)

// BoardRepository 定义了画板实时状态的读写操作。
// 整个进程只持有一个实例，由 bootstrap 注入到各个组件。
type BoardRepository interface {
	// Dimensions 返回画板的行数和列数，初始化后不再变化。
	Dimensions() (rows, cols int)

	// GetCell 返回指定格子的值，未认领时返回空字符串。
	// 坐标越界时返回 ErrOutOfBounds。
	GetCell(ctx context.Context, row, col int) (string, error)

	// SetCell 无条件覆盖指定格子的值（后写者胜出）。
	// 坐标越界时返回 ErrOutOfBounds。
	SetCell(ctx context.Context, row, col int, value string) error

	// Snapshot 返回完整状态的深拷贝，之后的修改不会影响已返回的快照。
	Snapshot(ctx context.Context) (domain.Snapshot, error)

	// UpdateSettings 修改标题和轴标签，不触碰格子内容。
	// 返回修改后的快照。
	UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.Snapshot, error)
}
