package http

import (
	"context"
	"net/http"
	"sync"

	"babysquares/internal/domain"
	"babysquares/internal/dto"
	"babysquares/internal/service"
	"babysquares/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Broadcaster 把变化后的片段推送给其他打开着的页面。
type Broadcaster interface {
	Broadcast(payload []byte) bool
}

// BoardHandler 封装了看板页面和 htmx 片段的 HTTP 处理逻辑
type BoardHandler struct {
	boardService *service.BoardService
	renderer     *view.Renderer
	broadcaster  Broadcaster // 可以为 nil

	// 写入和推送入队在同一把锁内完成，其他页面收到的顺序与写入顺序一致
	publishMu sync.Mutex
}

// NewBoardHandler 创建 BoardHandler 实例
func NewBoardHandler(boardService *service.BoardService, renderer *view.Renderer, broadcaster Broadcaster) *BoardHandler {
	if boardService == nil {
		panic("BoardService cannot be nil for BoardHandler")
	}
	if renderer == nil {
		panic("Renderer cannot be nil for BoardHandler")
	}
	return &BoardHandler{
		boardService: boardService,
		renderer:     renderer,
		broadcaster:  broadcaster,
	}
}

// Index 处理 GET /，返回完整页面
func (h *BoardHandler) Index(c *gin.Context) {
	snap, err := h.boardService.Snapshot(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	page, err := h.renderer.Page(snap)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	HTMLResponse(c, http.StatusOK, page)
}

// EditSquare 处理 GET /edit-square，返回格子的行内编辑表单
func (h *BoardHandler) EditSquare(c *gin.Context) {
	var q dto.SquareQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logrus.WithError(err).Warn("Handler.EditSquare: Invalid query")
		ErrorResponse(c, http.StatusBadRequest, "Invalid query")
		return
	}
	row, col, err := service.ParseCoordinate(q.Row, q.Col)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	value, err := h.boardService.GetCell(c.Request.Context(), row, col)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	form, err := h.renderer.EditCell(row, col, value)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	HTMLResponse(c, http.StatusOK, form)
}

// UpdateSquare 处理 POST /update-square，保存认领者并返回只读格子
func (h *BoardHandler) UpdateSquare(c *gin.Context) {
	var req dto.UpdateSquareRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateSquare: Invalid form")
		ErrorResponse(c, http.StatusBadRequest, "Invalid form")
		return
	}
	row, col, err := service.ParseCoordinate(req.Row, req.Col)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	h.publishMu.Lock()
	err = h.boardService.SetCell(c.Request.Context(), row, col, req.Buyer)
	if err == nil {
		h.broadcast(func() ([]byte, error) { return h.renderer.LiveCell(row, col, req.Buyer) })
	}
	h.publishMu.Unlock()
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	cell, err := h.renderer.Cell(row, col, req.Buyer)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	HTMLResponse(c, http.StatusOK, cell)
}

// UpdateBoard 处理 POST /update-board，修改标题和轴标签并返回新的看板
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	var req dto.UpdateBoardRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateBoard: Invalid form")
		ErrorResponse(c, http.StatusBadRequest, "Invalid form")
		return
	}

	h.publishMu.Lock()
	snap, err := h.boardService.UpdateSettings(c.Request.Context(), domain.SettingsUpdate{
		Title:   req.BoardTitle,
		XLabels: req.XLabels,
		YLabels: req.YLabels,
	})
	if err == nil {
		// 其他页面只替换标题和轴标签，不打断正在进行的格子编辑
		h.broadcast(func() ([]byte, error) { return h.renderer.LiveSettings(snap) })
	}
	h.publishMu.Unlock()
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	wrapper, err := h.renderer.BoardWrapper(snap)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	HTMLResponse(c, http.StatusOK, wrapper)
}

// broadcast 调用方必须持有 publishMu。Broadcaster 只负责入队，不会阻塞。
func (h *BoardHandler) broadcast(render func() ([]byte, error)) {
	if h.broadcaster == nil {
		return
	}
	payload, err := render()
	if err != nil {
		logrus.WithError(err).Error("Failed to render live update")
		return
	}
	h.broadcaster.Broadcast(payload)
}

// BoardSync 为新连接的 websocket 客户端提供完整看板片段。
type BoardSync struct {
	boardService *service.BoardService
	renderer     *view.Renderer
}

// NewBoardSync 创建 BoardSync 实例
func NewBoardSync(boardService *service.BoardService, renderer *view.Renderer) *BoardSync {
	return &BoardSync{boardService: boardService, renderer: renderer}
}

// SyncMessage 实现 hub.SyncSource
func (s *BoardSync) SyncMessage() ([]byte, error) {
	snap, err := s.boardService.Snapshot(context.Background())
	if err != nil {
		return nil, err
	}
	return s.renderer.LiveBoard(snap)
}
