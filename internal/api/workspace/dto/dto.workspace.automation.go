package wsdto

import (
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/models"
)

// AutomationCreateInput đầu vào tạo automation rule.
type AutomationCreateInput struct {
	Name        string                    `json:"name" validate:"required" maxLength:"200"`
	Description string                    `json:"description,omitempty" maxLength:"1000"`
	Trigger     models.AutomationTrigger  `json:"trigger" validate:"required"`
	Actions     []models.AutomationAction `json:"actions" validate:"required,min=1"`
	TeamID      string                    `json:"teamId,omitempty" transform:"str_objectid,optional"`
	CreatedBy   string                    `json:"createdBy,omitempty" transform:"str_objectid,optional"`
}

// AutomationUpdateInput đầu vào cập nhật automation rule.
// Bật/tắt rule dùng endpoint enable/disable riêng, không đi qua field merge
// (field merge bỏ qua zero value nên không thể hiện được enabled=false).
type AutomationUpdateInput struct {
	Name        string                    `json:"name,omitempty" maxLength:"200"`
	Description string                    `json:"description,omitempty" maxLength:"1000"`
	Trigger     models.AutomationTrigger  `json:"trigger,omitempty"`
	Actions     []models.AutomationAction `json:"actions,omitempty"`
	TeamID      string                    `json:"teamId,omitempty" transform:"str_objectid,optional"`
}
