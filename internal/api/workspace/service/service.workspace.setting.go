package wssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
)

// SettingService xử lý cấu hình workspace dạng key-value.
type SettingService struct {
	*basesvc.BaseServiceMongoImpl[models.Setting]
}

// NewSettingService tạo SettingService mới.
func NewSettingService() (*SettingService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Settings)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Settings, common.ErrNotFound)
	}
	return &SettingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Setting](coll),
	}, nil
}

// GetByKey lấy setting theo key.
func (s *SettingService) GetByKey(ctx context.Context, key string) (*models.Setting, error) {
	setting, err := s.FindOne(ctx, bson.M{"key": key}, nil)
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// UpsertByKey ghi đè setting theo key, tạo mới nếu chưa có.
func (s *SettingService) UpsertByKey(ctx context.Context, key string, value interface{}, description string) (*models.Setting, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"value": value,
		},
		SetOnInsert: map[string]interface{}{
			"key":            key,
			"organizationId": global.ServerConfig.DefaultOrgID,
		},
	}
	if description != "" {
		updateData.Set["description"] = description
	}
	setting, err := s.Upsert(ctx, bson.M{"key": key}, updateData)
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
