package wssvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
)

// AutomationService xử lý automation rule.
type AutomationService struct {
	*basesvc.BaseServiceMongoImpl[models.AutomationRule]
}

// NewAutomationService tạo AutomationService mới.
func NewAutomationService() (*AutomationService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Automations)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Automations, common.ErrNotFound)
	}
	return &AutomationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AutomationRule](coll),
	}, nil
}

// SetEnabled bật/tắt rule.
func (s *AutomationService) SetEnabled(ctx context.Context, id primitive.ObjectID, enabled bool) (*models.AutomationRule, error) {
	rule, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"enabled": enabled},
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// TriggerRun chạy thủ công một rule đang bật và ghi nhận lần chạy vào bộ đếm.
func (s *AutomationService) TriggerRun(ctx context.Context, id primitive.ObjectID) (*models.AutomationRule, error) {
	rule, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := runnableRule(&rule); err != nil {
		return nil, err
	}
	if err := s.RecordRun(ctx, id, nil); err != nil {
		return nil, err
	}
	refreshed, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &refreshed, nil
}

// runnableRule kiểm tra rule có được phép chạy không.
func runnableRule(rule *models.AutomationRule) error {
	if rule == nil {
		return common.ErrNotFound
	}
	if !rule.Enabled {
		return common.ErrAutomationDisabled
	}
	return nil
}

// RecordRun ghi nhận một lần rule chạy, cập nhật bộ đếm tích lũy.
func (s *AutomationService) RecordRun(ctx context.Context, id primitive.ObjectID, runErr error) error {
	rule, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	set := map[string]interface{}{
		"lastRunAt": time.Now().UnixMilli(),
		"runCount":  rule.RunCount + 1,
	}
	if runErr != nil {
		set["errorCount"] = rule.ErrorCount + 1
	}
	_, err = s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	return err
}
