// Package models - model phòng ban (Team) thuộc domain org.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team định nghĩa phòng ban trong workspace.
type Team struct {
	_Relationships struct{}           `relationship:"collection:members,field:teamIds,message:Khong the xoa phong ban vi co %d thanh vien dang thuoc phong ban nay. Vui long chuyen thanh vien sang phong ban khac truoc."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID string             `json:"organizationId" bson:"organizationId" index:"single:1"`
	Name           string             `json:"name" bson:"name" index:"single:1"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	LeadID         primitive.ObjectID `json:"leadId,omitempty" bson:"leadId,omitempty"`
	Color          string             `json:"color,omitempty" bson:"color,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
