// Package wshdl - handler cho domain workspace.
// Các entity workspace đều là CRUD thuần qua base handler, chỉ Automation có
// thêm endpoint bật/tắt và chạy thủ công rule.
package wshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/handler"
	wsdto "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/dto"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/models"
	wssvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/service"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/utility"
)

// TaskHandler xử lý các request quản lý task.
type TaskHandler struct {
	*basehdl.BaseHandler[models.Task, wsdto.TaskCreateInput, wsdto.TaskUpdateInput]
}

// NewTaskHandler tạo instance mới của TaskHandler.
func NewTaskHandler() (*TaskHandler, error) {
	svc, err := wssvc.NewTaskService()
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %v", err)
	}
	return &TaskHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Task, wsdto.TaskCreateInput, wsdto.TaskUpdateInput](svc),
	}, nil
}

// DocHandler xử lý các request quản lý tài liệu.
type DocHandler struct {
	*basehdl.BaseHandler[models.Doc, wsdto.DocCreateInput, wsdto.DocUpdateInput]
}

// NewDocHandler tạo instance mới của DocHandler.
func NewDocHandler() (*DocHandler, error) {
	svc, err := wssvc.NewDocService()
	if err != nil {
		return nil, fmt.Errorf("failed to create doc service: %v", err)
	}
	return &DocHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Doc, wsdto.DocCreateInput, wsdto.DocUpdateInput](svc),
	}, nil
}

// AutomationHandler xử lý các request quản lý automation rule.
type AutomationHandler struct {
	*basehdl.BaseHandler[models.AutomationRule, wsdto.AutomationCreateInput, wsdto.AutomationUpdateInput]
	automationService *wssvc.AutomationService
}

// NewAutomationHandler tạo instance mới của AutomationHandler.
func NewAutomationHandler() (*AutomationHandler, error) {
	svc, err := wssvc.NewAutomationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create automation service: %v", err)
	}
	return &AutomationHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.AutomationRule, wsdto.AutomationCreateInput, wsdto.AutomationUpdateInput](svc),
		automationService: svc,
	}, nil
}

func (h *AutomationHandler) handleSetEnabled(c fiber.Ctx, enabled bool) error {
	return h.SafeHandler(c, func() error {
		id := utility.String2ObjectID(c.Params("id"))
		if id.IsZero() {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		rule, err := h.automationService.SetEnabled(c.Context(), id, enabled)
		h.HandleResponse(c, rule, err)
		return nil
	})
}

// HandleEnable bật rule.
func (h *AutomationHandler) HandleEnable(c fiber.Ctx) error {
	return h.handleSetEnabled(c, true)
}

// HandleDisable tắt rule.
func (h *AutomationHandler) HandleDisable(c fiber.Ctx) error {
	return h.handleSetEnabled(c, false)
}

// HandleRun chạy thủ công một rule đang bật.
func (h *AutomationHandler) HandleRun(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := utility.String2ObjectID(c.Params("id"))
		if id.IsZero() {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		rule, err := h.automationService.TriggerRun(c.Context(), id)
		h.HandleResponse(c, rule, err)
		return nil
	})
}

// AuditLogHandler xử lý các request ghi và tra cứu audit log.
type AuditLogHandler struct {
	*basehdl.BaseHandler[models.AuditLog, wsdto.AuditLogCreateInput, wsdto.AuditLogUpdateInput]
}

// NewAuditLogHandler tạo instance mới của AuditLogHandler.
func NewAuditLogHandler() (*AuditLogHandler, error) {
	svc, err := wssvc.NewAuditLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log service: %v", err)
	}
	return &AuditLogHandler{
		BaseHandler: basehdl.NewBaseHandler[models.AuditLog, wsdto.AuditLogCreateInput, wsdto.AuditLogUpdateInput](svc),
	}, nil
}

// SettingHandler xử lý các request cấu hình workspace.
type SettingHandler struct {
	*basehdl.BaseHandler[models.Setting, wsdto.SettingUpsertInput, wsdto.SettingUpdateInput]
}

// NewSettingHandler tạo instance mới của SettingHandler.
func NewSettingHandler() (*SettingHandler, error) {
	svc, err := wssvc.NewSettingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create setting service: %v", err)
	}
	return &SettingHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Setting, wsdto.SettingUpsertInput, wsdto.SettingUpdateInput](svc),
	}, nil
}
