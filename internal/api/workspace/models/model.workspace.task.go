// Package models - các model thuộc domain workspace (Task, Doc, Automation, AuditLog, Setting).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChecklistItem là một mục trong checklist của task.
type ChecklistItem struct {
	ID        string `json:"id" bson:"id"`
	Text      string `json:"text" bson:"text"`
	Completed bool   `json:"completed" bson:"completed"`
	Order     int    `json:"order" bson:"order"`
}

// Task định nghĩa một công việc trong workspace.
// assigneeId được relationship guard của Member tham chiếu: xóa member còn task
// được gán chỉ cảnh báo chứ không chặn (optional).
type Task struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID string             `json:"organizationId" bson:"organizationId" index:"single:1"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Status         string             `json:"status" bson:"status" index:"single:1" default:"todo"`
	Priority       string             `json:"priority" bson:"priority" default:"normal"`
	AssigneeID     primitive.ObjectID `json:"assigneeId,omitempty" bson:"assigneeId,omitempty" index:"single:1"`
	TeamID         primitive.ObjectID `json:"teamId,omitempty" bson:"teamId,omitempty" index:"single:1"`
	CreatedBy      primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	Tags           []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Checklist      []ChecklistItem    `json:"checklist,omitempty" bson:"checklist,omitempty"`
	DueDate        int64              `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	StartDate      int64              `json:"startDate,omitempty" bson:"startDate,omitempty"`
	CompletedAt    int64              `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	Archived       bool               `json:"archived" bson:"archived"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
