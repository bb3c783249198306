package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/config"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	// Auth & Org
	Users   string // Tên collection cho người dùng (định danh đăng nhập)
	Members string // Tên collection cho thành viên trong org (vai trò, phòng ban, managerId)
	Teams   string // Tên collection cho phòng ban

	// Chat
	Channels string // Tên collection cho channel (public, private, dm)
	Messages string // Tên collection cho message trong channel

	// Workspace
	Tasks       string // Tên collection cho công việc
	Docs        string // Tên collection cho tài liệu
	Automations string // Tên collection cho automation rules
	AuditLogs   string // Tên collection cho audit log
	Settings    string // Tên collection cho cấu hình org (1 document per key)

	// AI Assistant
	AIConversations string // Tên collection cho hội thoại AI của từng user
	AIMessages      string // Tên collection cho message trong hội thoại AI
}

// Các biến toàn cục
var Validate *validator.Validate                                              // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                             // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                        // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
