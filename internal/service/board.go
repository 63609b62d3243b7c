package service

import (
	"context"
	"fmt"
	"strconv"

	"babysquares/internal/domain"
	"babysquares/internal/repository"

	"github.com/sirupsen/logrus"
)

// BoardService 负责画板格子和设置的读写逻辑。
// 它不持有状态，所有状态都在注入的 BoardRepository 中。
type BoardService struct {
	boardRepo repository.BoardRepository
}

// NewBoardService 创建 BoardService 实例。
func NewBoardService(boardRepo repository.BoardRepository) *BoardService {
	if boardRepo == nil {
		panic("BoardRepository cannot be nil for BoardService")
	}
	return &BoardService{boardRepo: boardRepo}
}

// ParseCoordinate 将来自表单或查询参数的行列字符串解析为整数。
// 只做语法检查，范围检查由仓库层完成。
func ParseCoordinate(rowRaw, colRaw string) (int, int, error) {
	row, err := strconv.Atoi(rowRaw)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q is not an integer", ErrInvalidCoordinate, rowRaw)
	}
	col, err := strconv.Atoi(colRaw)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q is not an integer", ErrInvalidCoordinate, colRaw)
	}
	return row, col, nil
}

// Dimensions 返回画板的行数和列数。
func (s *BoardService) Dimensions() (int, int) {
	return s.boardRepo.Dimensions()
}

// GetCell 返回指定格子当前的认领者，未认领时为空字符串。
func (s *BoardService) GetCell(ctx context.Context, row, col int) (string, error) {
	value, err := s.boardRepo.GetCell(ctx, row, col)
	if err != nil {
		logCtx := logrus.WithFields(logrus.Fields{"row": row, "col": col})
		logCtx.WithError(err).Warn("GetCell: repository rejected coordinate")
		return "", s.wrap(err, row, col)
	}
	return value, nil
}

// SetCell 覆盖指定格子的认领者，后写者胜出。
func (s *BoardService) SetCell(ctx context.Context, row, col int, value string) error {
	logCtx := logrus.WithFields(logrus.Fields{"row": row, "col": col})
	if err := s.boardRepo.SetCell(ctx, row, col, value); err != nil {
		logCtx.WithError(err).Warn("SetCell: failed to update cell")
		return s.wrap(err, row, col)
	}
	logCtx.WithField("buyer", value).Info("Square updated")
	return nil
}

// Snapshot 返回当前完整状态的副本。
func (s *BoardService) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	snap, err := s.boardRepo.Snapshot(ctx)
	if err != nil {
		logrus.WithError(err).Error("Snapshot: failed to read board state")
		return domain.Snapshot{}, mapRepoError(err)
	}
	return snap, nil
}

// UpdateSettings 修改标题和轴标签，返回修改后的快照。
// 标签数量不做校验，渲染时多余的忽略，缺少的留空。
func (s *BoardService) UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.Snapshot, error) {
	logCtx := logrus.WithFields(logrus.Fields{
		"title":    update.Title,
		"x_labels": update.XLabels,
		"y_labels": update.YLabels,
	})
	if update.IsEmpty() {
		logCtx.Debug("UpdateSettings: nothing submitted, board unchanged")
	}
	snap, err := s.boardRepo.UpdateSettings(ctx, update)
	if err != nil {
		logCtx.WithError(err).Error("UpdateSettings: failed to update board settings")
		return domain.Snapshot{}, mapRepoError(err)
	}

	rows, cols := s.boardRepo.Dimensions()
	if len(snap.XLabels) != cols || len(snap.YLabels) != rows {
		logCtx.WithFields(logrus.Fields{
			"x_count": len(snap.XLabels),
			"y_count": len(snap.YLabels),
		}).Warn("UpdateSettings: label count does not match board dimensions")
	}
	logCtx.Info("Board settings updated")
	return snap, nil
}

func (s *BoardService) wrap(err error, row, col int) error {
	mapped := mapRepoError(err)
	if mapped == ErrInvalidCoordinate {
		rows, cols := s.boardRepo.Dimensions()
		return fmt.Errorf("%w: (%d,%d) outside %dx%d board", ErrInvalidCoordinate, row, col, rows, cols)
	}
	return mapped
}
