package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AutomationTrigger mô tả sự kiện kích hoạt rule.
type AutomationTrigger struct {
	Type   string                 `json:"type" bson:"type"`
	Config map[string]interface{} `json:"config,omitempty" bson:"config,omitempty"`
}

// AutomationAction mô tả một hành động chạy khi rule được kích hoạt.
type AutomationAction struct {
	Type   string                 `json:"type" bson:"type"`
	Config map[string]interface{} `json:"config,omitempty" bson:"config,omitempty"`
	Order  int                    `json:"order" bson:"order"`
}

// AutomationRule định nghĩa một rule tự động hóa trong workspace.
// runCount/errorCount là bộ đếm tích lũy, cập nhật mỗi lần rule chạy.
type AutomationRule struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID string             `json:"organizationId" bson:"organizationId" index:"single:1"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Trigger        AutomationTrigger  `json:"trigger" bson:"trigger"`
	Actions        []AutomationAction `json:"actions" bson:"actions"`
	Enabled        bool               `json:"enabled" bson:"enabled" default:"true"`
	TeamID         primitive.ObjectID `json:"teamId,omitempty" bson:"teamId,omitempty"`
	CreatedBy      primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	LastRunAt      int64              `json:"lastRunAt,omitempty" bson:"lastRunAt,omitempty"`
	RunCount       int64              `json:"runCount" bson:"runCount"`
	ErrorCount     int64              `json:"errorCount" bson:"errorCount"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
