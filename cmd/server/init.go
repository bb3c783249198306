package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/config"
	aimodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/ai/models"
	authmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/auth/models"
	chatmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/models"
	orgmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	wsmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/database"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/utility"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Auth & Org
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.Members = "org_members"
	global.MongoDB_ColNames.Teams = "org_teams"

	// Chat
	global.MongoDB_ColNames.Channels = "chat_channels"
	global.MongoDB_ColNames.Messages = "chat_messages"

	// Workspace
	global.MongoDB_ColNames.Tasks = "ws_tasks"
	global.MongoDB_ColNames.Docs = "ws_docs"
	global.MongoDB_ColNames.Automations = "ws_automations"
	global.MongoDB_ColNames.AuditLogs = "ws_audit_logs"
	global.MongoDB_ColNames.Settings = "ws_settings"

	// AI Assistant
	global.MongoDB_ColNames.AIConversations = "ai_conversations"
	global.MongoDB_ColNames.AIMessages = "ai_messages"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName_Data
	col := func(name string) *mongo.Collection {
		return global.MongoDB_Session.Database(dbName).Collection(name)
	}

	// Auth & Org
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.Members), orgmodels.Member{})
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.Teams), orgmodels.Team{})

	// Chat
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.Channels), chatmodels.Channel{})
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.Messages), chatmodels.Message{})

	// Workspace
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.Tasks), wsmodels.Task{})
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.Docs), wsmodels.Doc{})
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.Automations), wsmodels.AutomationRule{})
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.AuditLogs), wsmodels.AuditLog{})
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.Settings), wsmodels.Setting{})

	// AI Assistant
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.AIConversations), aimodels.AIConversation{})
	database.CreateIndexes(context.TODO(), col(global.MongoDB_ColNames.AIMessages), aimodels.AIMessage{})
}

// initFirebase khởi tạo Firebase Admin SDK
func initFirebase() {
	cfg := global.ServerConfig

	// Kiểm tra Firebase config có đầy đủ không
	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
	if err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		// Không fatal, chỉ log warning để hệ thống vẫn chạy được
		return
	}

	logrus.Info("Firebase initialized successfully")
}
