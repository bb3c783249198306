package chatsvc

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/events"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
)

// MessageEvent là sự kiện đẩy xuống subscriber của một channel.
type MessageEvent struct {
	Operation string         `json:"operation"`
	Message   models.Message `json:"message"`
}

// subscriber là một kết nối stream đang lắng nghe một channel.
type subscriber struct {
	channelID primitive.ObjectID
	events    chan MessageEvent
}

// Hub fan-out sự kiện message theo channel cho các kết nối SSE.
// Nguồn sự kiện là event bus CRUD: mọi thay đổi message (kể cả từ worker) đều được đẩy,
// không cần từng handler tự nhớ gọi broadcast.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
}

var (
	hubInstance *Hub
	hubOnce     sync.Once
)

// GetHub trả về Hub singleton, đăng ký với event bus ở lần gọi đầu.
func GetHub() *Hub {
	hubOnce.Do(func() {
		hubInstance = &Hub{
			subscribers: make(map[*subscriber]struct{}),
		}
		events.OnDataChanged(hubInstance.handleDataChanged)
	})
	return hubInstance
}

// Subscribe đăng ký nhận sự kiện message của một channel.
// Trả về channel nhận sự kiện và hàm unsubscribe, caller phải gọi khi kết nối đóng.
func (h *Hub) Subscribe(channelID primitive.ObjectID) (<-chan MessageEvent, func()) {
	sub := &subscriber{
		channelID: channelID,
		// Buffer nhỏ để subscriber chậm không chặn fan-out
		events: make(chan MessageEvent, 32),
	}

	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		delete(h.subscribers, sub)
		h.mu.Unlock()
	}
	return sub.events, unsubscribe
}

// SubscriberCount trả về số kết nối đang lắng nghe một channel.
func (h *Hub) SubscriberCount(channelID primitive.ObjectID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	count := 0
	for sub := range h.subscribers {
		if sub.channelID == channelID {
			count++
		}
	}
	return count
}

// handleDataChanged lọc sự kiện của collection message và fan-out theo channelId.
func (h *Hub) handleDataChanged(ctx context.Context, e events.DataChangeEvent) {
	if e.CollectionName != global.MongoDB_ColNames.Messages {
		return
	}
	message, ok := extractMessage(e.Document)
	if !ok || message.ChannelID.IsZero() {
		return
	}
	event := MessageEvent{Operation: e.Operation, Message: message}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers {
		if sub.channelID != message.ChannelID {
			continue
		}
		select {
		case sub.events <- event:
		default:
			// Subscriber đầy buffer thì bỏ event, client tự reload lịch sử khi reconnect
		}
	}
}

func extractMessage(doc interface{}) (models.Message, bool) {
	switch v := doc.(type) {
	case models.Message:
		return v, true
	case *models.Message:
		if v != nil {
			return *v, true
		}
	}
	return models.Message{}, false
}
