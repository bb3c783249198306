package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doc định nghĩa một tài liệu trong workspace.
type Doc struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID string             `json:"organizationId" bson:"organizationId" index:"single:1"`
	Title          string             `json:"title" bson:"title" index:"text"`
	Content        string             `json:"content" bson:"content"`
	TeamID         primitive.ObjectID `json:"teamId,omitempty" bson:"teamId,omitempty" index:"single:1"`
	Tags           []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Version        int64              `json:"version" bson:"version"`
	CreatedBy      primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	LastEditedBy   primitive.ObjectID `json:"lastEditedBy,omitempty" bson:"lastEditedBy,omitempty"`
	Archived       bool               `json:"archived" bson:"archived"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
