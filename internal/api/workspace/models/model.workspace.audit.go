package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog ghi lại một hành động của người dùng trên hệ thống.
// Chỉ insert và đọc, không sửa/xóa qua API; worker dọn bản ghi quá hạn retention.
type AuditLog struct {
	ID             primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID string                 `json:"organizationId" bson:"organizationId" index:"single:1"`
	ActorID        primitive.ObjectID     `json:"actorId,omitempty" bson:"actorId,omitempty" index:"single:1"`
	ActorEmail     string                 `json:"actorEmail,omitempty" bson:"actorEmail,omitempty"`
	Action         string                 `json:"action" bson:"action" index:"single:1"`
	Resource       string                 `json:"resource" bson:"resource"`
	ResourceID     string                 `json:"resourceId,omitempty" bson:"resourceId,omitempty"`
	ResourceName   string                 `json:"resourceName,omitempty" bson:"resourceName,omitempty"`
	Details        map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"`
	IPAddress      string                 `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
	UserAgent      string                 `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	CreatedAt      int64                  `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt      int64                  `json:"updatedAt" bson:"updatedAt"`
}
