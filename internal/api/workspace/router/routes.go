// Package router đăng ký các route thuộc domain workspace: Task, Doc, Automation,
// AuditLog, Setting.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/middleware"
	orgmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	apirouter "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/router"
	wshdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/handler"
)

// Register đăng ký tất cả route workspace lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	taskHandler, err := wshdl.NewTaskHandler()
	if err != nil {
		return fmt.Errorf("failed to create task handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/task", taskHandler, apirouter.ReadWriteConfig, orgmodels.RoleMember)

	docHandler, err := wshdl.NewDocHandler()
	if err != nil {
		return fmt.Errorf("failed to create doc handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/doc", docHandler, apirouter.ReadWriteConfig, orgmodels.RoleMember)

	automationHandler, err := wshdl.NewAutomationHandler()
	if err != nil {
		return fmt.Errorf("failed to create automation handler: %w", err)
	}
	// Automation thay đổi hành vi hệ thống nên ghi cần role manager trở lên
	r.RegisterCRUDRoutes(v1, "/automation", automationHandler, apirouter.ReadWriteConfig, orgmodels.RoleManager)
	managerAuth := []fiber.Handler{
		middleware.AuthMiddleware(orgmodels.RoleManager),
		middleware.OrganizationContextMiddleware(),
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/automation", "POST", "/:id/enable", managerAuth, automationHandler.HandleEnable)
	apirouter.RegisterRouteWithMiddleware(v1, "/automation", "POST", "/:id/disable", managerAuth, automationHandler.HandleDisable)
	apirouter.RegisterRouteWithMiddleware(v1, "/automation", "POST", "/:id/run", managerAuth, automationHandler.HandleRun)

	auditHandler, err := wshdl.NewAuditLogHandler()
	if err != nil {
		return fmt.Errorf("failed to create audit log handler: %w", err)
	}
	// Audit log chỉ ghi thêm và đọc, không sửa/xóa qua API
	r.RegisterCRUDRoutes(v1, "/audit-log", auditHandler, apirouter.AppendOnlyConfig, orgmodels.RoleMember)

	settingHandler, err := wshdl.NewSettingHandler()
	if err != nil {
		return fmt.Errorf("failed to create setting handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/setting", settingHandler, apirouter.SettingConfig, orgmodels.RoleAdmin)

	return nil
}
