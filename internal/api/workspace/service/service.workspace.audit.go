package wssvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
)

// AuditLogService xử lý audit log (append-only).
type AuditLogService struct {
	*basesvc.BaseServiceMongoImpl[models.AuditLog]
}

// NewAuditLogService tạo AuditLogService mới.
func NewAuditLogService() (*AuditLogService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AuditLogs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.AuditLogs, common.ErrNotFound)
	}
	return &AuditLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AuditLog](coll),
	}, nil
}

// CleanupExpired xóa các bản ghi audit quá hạn retention.
// Dùng DeleteMany của collection trực tiếp, không qua relationship guard
// vì audit log không được entity nào tham chiếu.
func (s *AuditLogService) CleanupExpired(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays).UnixMilli()
	result, err := s.Collection().DeleteMany(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}
