package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting lưu cấu hình workspace dạng key-value, mỗi key một document (upsert theo key).
type Setting struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID string             `json:"organizationId" bson:"organizationId" index:"single:1"`
	Key            string             `json:"key" bson:"key" index:"unique"`
	Value          interface{}        `json:"value" bson:"value"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	UpdatedBy      primitive.ObjectID `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
