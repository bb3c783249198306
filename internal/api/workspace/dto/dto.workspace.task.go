// Package wsdto - DTO cho domain workspace.
package wsdto

import (
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/models"
)

// TaskCreateInput đầu vào tạo task.
type TaskCreateInput struct {
	Title       string                 `json:"title" validate:"required" maxLength:"500"`
	Description string                 `json:"description,omitempty" maxLength:"10000"`
	Status      string                 `json:"status,omitempty" maxLength:"100"`
	Priority    string                 `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	AssigneeID  string                 `json:"assigneeId,omitempty" transform:"str_objectid,optional"`
	TeamID      string                 `json:"teamId,omitempty" transform:"str_objectid,optional"`
	CreatedBy   string                 `json:"createdBy,omitempty" transform:"str_objectid,optional"`
	Tags        []string               `json:"tags,omitempty"`
	Checklist   []models.ChecklistItem `json:"checklist,omitempty"`
	DueDate     int64                  `json:"dueDate,omitempty"`
	StartDate   int64                  `json:"startDate,omitempty"`
}

// TaskUpdateInput đầu vào cập nhật task (field merge, chỉ field có giá trị).
type TaskUpdateInput struct {
	Title       string                 `json:"title,omitempty" maxLength:"500"`
	Description string                 `json:"description,omitempty" maxLength:"10000"`
	Status      string                 `json:"status,omitempty" maxLength:"100"`
	Priority    string                 `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	AssigneeID  string                 `json:"assigneeId,omitempty" transform:"str_objectid,optional"`
	TeamID      string                 `json:"teamId,omitempty" transform:"str_objectid,optional"`
	Tags        []string               `json:"tags,omitempty"`
	Checklist   []models.ChecklistItem `json:"checklist,omitempty"`
	DueDate     int64                  `json:"dueDate,omitempty"`
	StartDate   int64                  `json:"startDate,omitempty"`
	CompletedAt int64                  `json:"completedAt,omitempty"`
	Archived    bool                   `json:"archived,omitempty"`
}
