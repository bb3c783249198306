package worker

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	chatmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/models"
	chatsvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/service"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/logger"
)

// SummaryReconcileWorker đối soát metadata denormalized trên channel với collection message.
// lastMessageAt/lastMessagePreview/lastMessageBy và pinnedMessages được ghi bằng dual-write
// không transaction; crash giữa hai lần ghi để lại dữ liệu lệch. Worker này định kỳ
// dựng lại các giá trị đó từ message thật và sửa channel nào bị lệch.
// Chạy định kỳ (mặc định 10 phút), mỗi lần xử lý tối đa batchSize channel.
type SummaryReconcileWorker struct {
	channelService *chatsvc.ChannelService
	messageService *chatsvc.MessageService
	interval       time.Duration
	batchSize      int64
}

// NewSummaryReconcileWorker tạo mới SummaryReconcileWorker.
func NewSummaryReconcileWorker(interval time.Duration, batchSize int64) (*SummaryReconcileWorker, error) {
	channelService, err := chatsvc.NewChannelService()
	if err != nil {
		return nil, err
	}
	messageService, err := chatsvc.NewMessageService(channelService)
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 10 * time.Minute
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &SummaryReconcileWorker{
		channelService: channelService,
		messageService: messageService,
		interval:       interval,
		batchSize:      batchSize,
	}, nil
}

// Start chạy worker trong vòng lặp cho tới khi context bị hủy.
func (w *SummaryReconcileWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"batchSize": w.batchSize,
	}).Info("🔄 [SUMMARY_RECONCILE] Starting Summary Reconcile Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🔄 [SUMMARY_RECONCILE] Summary Reconcile Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🔄 [SUMMARY_RECONCILE] Panic khi đối soát, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()
				w.reconcileBatch(ctx)
			}()
		}
	}
}

func (w *SummaryReconcileWorker) reconcileBatch(ctx context.Context) {
	log := logger.GetAppLogger()

	opts := mongoopts.Find().SetLimit(w.batchSize).SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	channels, err := w.channelService.Find(ctx, bson.M{"archived": false}, opts)
	if err != nil {
		log.WithError(err).Error("🔄 [SUMMARY_RECONCILE] Lỗi lấy danh sách channel")
		return
	}

	fixed := 0
	for _, channel := range channels {
		changed, err := w.reconcileChannel(ctx, channel)
		if err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"channelId": channel.ID.Hex(),
			}).Warn("🔄 [SUMMARY_RECONCILE] Đối soát channel thất bại, bỏ qua và sẽ thử lại lần sau")
			continue
		}
		if changed {
			fixed++
		}
	}
	if fixed > 0 {
		log.WithFields(map[string]interface{}{
			"checked": len(channels),
			"fixed":   fixed,
		}).Info("🔄 [SUMMARY_RECONCILE] Đã sửa metadata lệch trên channel")
	}
}

// reconcileChannel dựng lại summary và pinnedMessages của một channel từ message thật.
// Trả về true nếu channel có dữ liệu lệch và đã được sửa.
func (w *SummaryReconcileWorker) reconcileChannel(ctx context.Context, channel chatmodels.Channel) (bool, error) {
	set := map[string]interface{}{}

	// Message mới nhất quyết định bộ lastMessage*
	latestOpts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(1)
	latest, err := w.messageService.Find(ctx, bson.M{"channelId": channel.ID}, latestOpts)
	if err != nil {
		return false, err
	}
	if len(latest) > 0 {
		msg := latest[0]
		preview := chatsvc.TruncatePreview(msg.Content, 100)
		if channel.LastMessageAt != msg.CreatedAt {
			set["lastMessageAt"] = msg.CreatedAt
		}
		if channel.LastMessagePreview != preview {
			set["lastMessagePreview"] = preview
		}
		if channel.LastMessageBy != msg.DisplayName {
			set["lastMessageBy"] = msg.DisplayName
		}
	}

	// pinnedMessages phải khớp tập message có cờ pinned
	pinned, err := w.messageService.Find(ctx, bson.M{"channelId": channel.ID, "pinned": true}, nil)
	if err != nil {
		return false, err
	}
	pinnedIDs := make([]primitive.ObjectID, 0, len(pinned))
	for _, msg := range pinned {
		pinnedIDs = append(pinnedIDs, msg.ID)
	}
	if !sameIDSet(channel.PinnedMessages, pinnedIDs) {
		set["pinnedMessages"] = pinnedIDs
	}

	if len(set) == 0 {
		return false, nil
	}
	_, err = w.channelService.UpdateById(ctx, channel.ID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return false, err
	}
	return true, nil
}

// sameIDSet so sánh hai danh sách id như tập hợp, không quan tâm thứ tự.
func sameIDSet(a, b []primitive.ObjectID) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[primitive.ObjectID]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}
