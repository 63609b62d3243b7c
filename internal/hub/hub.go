package hub

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// 包级别的 WebSocket 常量，供 hub 和 client 使用
const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// 浏览器端不会发送业务消息，只需容纳控制帧
	maxMessageSize = 512

	// 每个客户端发送队列的长度
	sendBufferSize = 64
)

// 消息类型
const (
	MessageRegister   = "register"
	MessageUnregister = "unregister"
	MessageBroadcast  = "broadcast"
)

// HubMessage 定义了在 Hub 内部通道传递的消息
type HubMessage struct {
	Type    string  // register / unregister / broadcast
	Client  *Client // 仅用于 register/unregister
	Payload []byte  // 仅用于 broadcast
}

// SyncSource 提供新客户端连接时需要推送的完整看板片段。
type SyncSource interface {
	SyncMessage() ([]byte, error)
}

// Hub 维护所有打开着页面的 websocket 客户端，并把看板变化推送给它们。
// 客户端集合只在 Run 所在的 goroutine 中修改。
type Hub struct {
	messageChan chan HubMessage
	done        chan struct{}
	stopOnce    sync.Once

	clients   map[*Client]bool
	clientsMu sync.RWMutex

	syncSource SyncSource
}

// NewHub 创建 Hub。syncSource 为 nil 时新客户端不会收到初始同步。
func NewHub(syncSource SyncSource) *Hub {
	return &Hub{
		messageChan: make(chan HubMessage, 256),
		done:        make(chan struct{}),
		clients:     make(map[*Client]bool),
		syncSource:  syncSource,
	}
}

// Run 启动 Hub 的主事件处理循环，应该在单独的 goroutine 中运行。
// Stop 被调用后返回。
func (h *Hub) Run() {
	log := logrus.WithField("component", "hub")
	log.Info("Hub is running...")

	for {
		select {
		case msg := <-h.messageChan:
			switch msg.Type {
			case MessageRegister:
				h.registerClient(msg.Client)
			case MessageUnregister:
				h.unregisterClient(msg.Client)
			case MessageBroadcast:
				h.broadcast(msg.Payload)
			default:
				log.Warnf("Hub: Received unknown message type: %s", msg.Type)
			}
		case <-h.done:
			h.closeAll()
			log.Info("Hub is shutting down...")
			return
		}
	}
}

// Stop 让 Run 退出并关闭所有客户端的发送通道，可以重复调用。
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// QueueMessage 将消息放入 Hub 的处理队列 (非阻塞)。
// 返回 false 表示队列已满，消息被丢弃。
func (h *Hub) QueueMessage(msg HubMessage) bool {
	select {
	case h.messageChan <- msg:
		return true
	default:
		logrus.WithField("message_type", msg.Type).Warn("Hub message channel full, dropping message")
		return false
	}
}

// Broadcast 把片段推送给所有已连接的客户端。
func (h *Hub) Broadcast(payload []byte) bool {
	return h.QueueMessage(HubMessage{Type: MessageBroadcast, Payload: payload})
}

// ClientCount 返回当前已注册的客户端数量。
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	if client == nil {
		logrus.Error("Hub: Attempted to register a nil client")
		return
	}
	logCtx := logrus.WithField("client_id", client.ID())

	h.clientsMu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.clientsMu.Unlock()
	logCtx.WithField("clients", total).Info("Client registered to Hub")

	h.sendInitialSync(client, logCtx)
}

// sendInitialSync 在 Run 的 goroutine 中执行，避免与 unregister 关闭通道竞争。
func (h *Hub) sendInitialSync(client *Client, logCtx *logrus.Entry) {
	if h.syncSource == nil {
		return
	}
	payload, err := h.syncSource.SyncMessage()
	if err != nil {
		logCtx.WithError(err).Error("Failed to build initial board sync")
		return
	}
	select {
	case client.send <- payload:
		logCtx.Debug("Initial board sync queued")
	default:
		logCtx.Warn("Client send channel full when trying to send initial sync, message dropped")
	}
}

func (h *Hub) unregisterClient(client *Client) {
	if client == nil {
		logrus.Error("Hub: Attempted to unregister a nil client")
		return
	}
	logCtx := logrus.WithField("client_id", client.ID())

	h.clientsMu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.clientsMu.Unlock()
		logCtx.Debug("Client not found during unregister")
		return
	}
	delete(h.clients, client)
	close(client.send)
	total := len(h.clients)
	h.clientsMu.Unlock()
	logCtx.WithField("clients", total).Info("Client unregistered from Hub")
}

// broadcast 使用非阻塞发送，慢客户端会错过这条消息，但不会阻塞其他客户端。
func (h *Hub) broadcast(payload []byte) {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	logCtx := logrus.WithFields(logrus.Fields{
		"message_size":    len(payload),
		"recipient_count": len(h.clients),
	})
	logCtx.Debug("Broadcasting message to clients")

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			logCtx.WithField("client_id", client.ID()).Warn("Client send channel full during broadcast, skipping this client")
		}
	}
}

func (h *Hub) closeAll() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}
