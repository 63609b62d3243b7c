package service_test

import (
	"context"
	"errors"
	"testing"

	"babysquares/internal/domain"
	memorystate "babysquares/internal/infra/state/memory"
	"babysquares/internal/repository"
	"babysquares/internal/repository/mocks"
	"babysquares/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *service.BoardService {
	return service.NewBoardService(memorystate.NewDefaultBoardRepository())
}

// --- ParseCoordinate ---

func TestParseCoordinate(t *testing.T) {
	row, col, err := service.ParseCoordinate("3", "7")
	require.NoError(t, err)
	assert.Equal(t, 3, row)
	assert.Equal(t, 7, col)

	// 负数语法合法，越界交给仓库层判断
	row, col, err = service.ParseCoordinate("-1", "0")
	require.NoError(t, err)
	assert.Equal(t, -1, row)
	assert.Equal(t, 0, col)

	for _, tc := range [][2]string{{"", "1"}, {"1", ""}, {"a", "1"}, {"1", "2.5"}, {" 1", "2"}, {"0x1", "2"}} {
		_, _, err := service.ParseCoordinate(tc[0], tc[1])
		assert.True(t, errors.Is(err, service.ErrInvalidCoordinate), "(%q,%q) 应解析失败", tc[0], tc[1])
	}
}

// --- 端到端场景 ---

func TestBoardService_ClaimSingleSquare(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.SetCell(ctx, 3, 7, "Alice"))

	got, err := svc.GetCell(ctx, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got)

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	for r, row := range snap.Cells {
		for c, v := range row {
			if r == 3 && c == 7 {
				continue
			}
			assert.Empty(t, v, "格子 (%d,%d) 应保持为空", r, c)
		}
	}
}

func TestBoardService_RenameBoard(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, domain.SettingsUpdate{Title: "Party Board"})
	require.NoError(t, err)

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Party Board", snap.Title)
	assert.Equal(t, domain.DefaultLabels(10), snap.XLabels)
	assert.Equal(t, domain.DefaultLabels(10), snap.YLabels)
}

func TestBoardService_RelabelKeepsClaims(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.SetCell(ctx, 9, 9, "Bob"))
	snap, err := svc.UpdateSettings(ctx, domain.SettingsUpdate{YLabels: "A,B,C,D,E,F,G,H,I,J"})
	require.NoError(t, err)
	assert.Equal(t, "J", snap.YLabels[9])

	got, err := svc.GetCell(ctx, 9, 9)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got)
}

func TestBoardService_EmptyUpdateKeepsEverything(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	require.NoError(t, svc.SetCell(ctx, 1, 2, "Dana"))
	before, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	after, err := svc.UpdateSettings(ctx, domain.SettingsUpdate{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestBoardService_LabelCountMismatchTolerated(t *testing.T) {
	svc := newService()
	snap, err := svc.UpdateSettings(context.Background(), domain.SettingsUpdate{XLabels: "only,three,labels"})
	require.NoError(t, err)
	assert.Equal(t, []string{"only", "three", "labels"}, snap.XLabels)
	assert.Equal(t, "", snap.XLabel(9))
}

func TestBoardService_InvalidCoordinate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for _, tc := range []struct{ row, col int }{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		_, err := svc.GetCell(ctx, tc.row, tc.col)
		assert.True(t, errors.Is(err, service.ErrInvalidCoordinate), "GetCell(%d,%d)", tc.row, tc.col)
		err = svc.SetCell(ctx, tc.row, tc.col, "Eve")
		assert.True(t, errors.Is(err, service.ErrInvalidCoordinate), "SetCell(%d,%d)", tc.row, tc.col)
	}
}

// --- 错误映射 (使用 Mock 仓库) ---

func TestBoardService_SetCell_OutOfBoundsMapped(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewBoardRepository(t)
	svc := service.NewBoardService(mockRepo)
	ctx := context.Background()

	mockRepo.On("SetCell", ctx, 12, 0, "Zed").Return(repository.ErrOutOfBounds).Once()
	mockRepo.On("Dimensions").Return(10, 10).Once()

	// Act
	err := svc.SetCell(ctx, 12, 0, "Zed")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidCoordinate))
	assert.Contains(t, err.Error(), "(12,0)")
}

func TestBoardService_Snapshot_RepositoryFailure(t *testing.T) {
	mockRepo := mocks.NewBoardRepository(t)
	svc := service.NewBoardService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Snapshot", ctx).Return(domain.Snapshot{}, errors.New("boom")).Once()

	_, err := svc.Snapshot(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInternalServer), "未知仓库错误应映射为内部错误")
}

func TestBoardService_UpdateSettings_PassesUpdateThrough(t *testing.T) {
	mockRepo := mocks.NewBoardRepository(t)
	svc := service.NewBoardService(mockRepo)
	ctx := context.Background()
	update := domain.SettingsUpdate{Title: "T", XLabels: "a,b"}
	result := domain.Snapshot{Title: "T", XLabels: []string{"a", "b"}, YLabels: domain.DefaultLabels(10)}

	mockRepo.On("UpdateSettings", ctx, update).Return(result, nil).Once()
	mockRepo.On("Dimensions").Return(10, 10).Once()

	snap, err := svc.UpdateSettings(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, result, snap)
}

func TestNewBoardService_NilRepositoryPanics(t *testing.T) {
	assert.Panics(t, func() { service.NewBoardService(nil) })
}
