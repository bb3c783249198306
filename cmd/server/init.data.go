package main

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	chatmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/models"
	chatsvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/service"
	wssvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/service"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/logger"
)

// defaultGeneralChannelName là channel public mặc định mà mọi thành viên đều thấy.
const defaultGeneralChannelName = "general"

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	ctx := context.Background()

	// 1. Khởi tạo các setting mặc định (chỉ tạo khi chưa có, không ghi đè giá trị admin đã sửa)
	log.Info("🔄 [INIT] Step 1: Initializing default settings...")
	if err := initDefaultSettings(ctx); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 1: Failed to initialize default settings")
	} else {
		log.Info("✅ [INIT] Step 1: Default settings initialized")
	}

	// 2. Khởi tạo channel "general" mặc định
	log.Info("🔄 [INIT] Step 2: Initializing default general channel...")
	if err := initGeneralChannel(ctx); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 2: Failed to initialize general channel")
	} else {
		log.Info("✅ [INIT] Step 2: General channel initialized")
	}

	// Owner không cần seed ở đây: user đầu tiên login sẽ tự động trở thành owner
	// (xem MemberService.EnsureMemberForUser)
	log.Info("✅ [INIT] InitDefaultData completed successfully")
}

// initDefaultSettings tạo các setting mặc định nếu chưa tồn tại
func initDefaultSettings(ctx context.Context) error {
	settingService, err := wssvc.NewSettingService()
	if err != nil {
		return err
	}

	defaults := []struct {
		Key         string
		Value       interface{}
		Description string
	}{
		{"workspace.name", "Solis Center", "Tên hiển thị của workspace"},
		{"audit.retentionDays", global.ServerConfig.AuditLogRetentionDays, "Số ngày giữ audit log trước khi worker dọn"},
		{"chat.defaultChannel", defaultGeneralChannelName, "Channel mặc định cho thành viên mới"},
	}

	log := logger.GetAppLogger()
	for _, d := range defaults {
		_, err := settingService.GetByKey(ctx, d.Key)
		if err == nil {
			continue // Đã tồn tại, giữ nguyên giá trị hiện tại
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}
		if _, err := settingService.UpsertByKey(ctx, d.Key, d.Value, d.Description); err != nil {
			return err
		}
		log.Infof("🔄 [INIT] Setting %s created with default value", d.Key)
	}
	return nil
}

// initGeneralChannel tạo channel public "general" nếu chưa có.
// Upsert theo (organizationId, name, type) nên chạy lại nhiều lần vẫn an toàn.
func initGeneralChannel(ctx context.Context) error {
	channelService, err := chatsvc.NewChannelService()
	if err != nil {
		return err
	}

	orgID := global.ServerConfig.DefaultOrgID
	filter := bson.M{
		"organizationId": orgID,
		"name":           defaultGeneralChannelName,
		"type":           chatmodels.ChannelTypePublic,
	}
	updateData := &basesvc.UpdateData{
		SetOnInsert: map[string]interface{}{
			"organizationId": orgID,
			"name":           defaultGeneralChannelName,
			"description":    "Kênh chung cho toàn bộ workspace",
			"type":           chatmodels.ChannelTypePublic,
			"createdByName":  "Solis Center",
			"members":        []interface{}{},
			"admins":         []interface{}{},
			"pinnedMessages": []interface{}{},
			"archived":       false,
		},
	}
	_, err = channelService.Upsert(ctx, filter, updateData)
	return err
}
