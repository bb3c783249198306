package worker

import (
	"context"
	"time"

	wssvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/service"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/logger"
)

// auditRetentionSettingKey là setting cho phép admin đổi số ngày giữ audit log.
const auditRetentionSettingKey = "audit.retentionDays"

// AuditCleanupWorker dọn các bản ghi audit log quá hạn retention.
// Số ngày giữ đọc từ setting audit.retentionDays mỗi lần chạy, chưa cấu hình
// thì dùng giá trị mặc định truyền lúc khởi tạo.
type AuditCleanupWorker struct {
	auditService         *wssvc.AuditLogService
	settingService       *wssvc.SettingService
	interval             time.Duration
	defaultRetentionDays int
}

// NewAuditCleanupWorker tạo mới AuditCleanupWorker.
func NewAuditCleanupWorker(interval time.Duration, defaultRetentionDays int) (*AuditCleanupWorker, error) {
	auditService, err := wssvc.NewAuditLogService()
	if err != nil {
		return nil, err
	}
	settingService, err := wssvc.NewSettingService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 24 * time.Hour
	}
	if defaultRetentionDays <= 0 {
		defaultRetentionDays = 180
	}
	return &AuditCleanupWorker{
		auditService:         auditService,
		settingService:       settingService,
		interval:             interval,
		defaultRetentionDays: defaultRetentionDays,
	}, nil
}

// Start chạy worker trong vòng lặp cho tới khi context bị hủy.
func (w *AuditCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":             w.interval.String(),
		"defaultRetentionDays": w.defaultRetentionDays,
	}).Info("🧹 [AUDIT_CLEANUP] Starting Audit Cleanup Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🧹 [AUDIT_CLEANUP] Audit Cleanup Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🧹 [AUDIT_CLEANUP] Panic khi dọn audit log, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()
				w.cleanup(ctx)
			}()
		}
	}
}

func (w *AuditCleanupWorker) cleanup(ctx context.Context) {
	log := logger.GetAppLogger()

	retentionDays := w.defaultRetentionDays
	if setting, err := w.settingService.GetByKey(ctx, auditRetentionSettingKey); err == nil {
		// Setting value đi qua JSON nên số về dạng float64
		if days, ok := setting.Value.(float64); ok && days > 0 {
			retentionDays = int(days)
		}
		if days, ok := setting.Value.(int64); ok && days > 0 {
			retentionDays = int(days)
		}
	}

	deleted, err := w.auditService.CleanupExpired(ctx, retentionDays)
	if err != nil {
		log.WithError(err).Error("🧹 [AUDIT_CLEANUP] Lỗi dọn audit log quá hạn")
		return
	}
	if deleted > 0 {
		log.WithFields(map[string]interface{}{
			"deleted":       deleted,
			"retentionDays": retentionDays,
		}).Info("🧹 [AUDIT_CLEANUP] Đã dọn audit log quá hạn")
	}
}
