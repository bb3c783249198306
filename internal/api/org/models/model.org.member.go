// Package models - model thành viên (Member) thuộc domain org.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các role của thành viên trong workspace, xếp theo thứ bậc tăng dần.
const (
	RoleReadonly = "readonly"
	RoleGuest    = "guest"
	RoleMember   = "member"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
	RoleOwner    = "owner"
)

// roleRanks thứ bậc của từng role, dùng để so sánh quyền và sắp xếp cây tổ chức.
var roleRanks = map[string]int{
	RoleReadonly: 1,
	RoleGuest:    2,
	RoleMember:   3,
	RoleManager:  4,
	RoleAdmin:    5,
	RoleOwner:    6,
}

// RoleRank trả về thứ bậc của role (0 nếu role không hợp lệ).
func RoleRank(role string) int {
	return roleRanks[role]
}

// Member định nghĩa hồ sơ thành viên trong sơ đồ tổ chức.
// ID trùng với ID của user trong collection users (một user một hồ sơ).
// ManagerID tham chiếu member khác (self-referential), tạo thành cây tổ chức.
type Member struct {
	_Relationships struct{}             `relationship:"collection:members,field:managerId,message:Khong the xoa thanh vien vi co %d thanh vien khac dang bao cao truc tiep. Vui long doi quan ly cua ho truoc.|collection:tasks,field:assigneeId,optional:true"`
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID string               `json:"organizationId" bson:"organizationId" index:"single:1"`
	DisplayName    string               `json:"displayName" bson:"displayName"`
	Email          string               `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Title          string               `json:"title,omitempty" bson:"title,omitempty"`
	Department     string               `json:"department,omitempty" bson:"department,omitempty"`
	Role           string               `json:"role" bson:"role" index:"single:1" default:"member"`
	TeamIDs        []primitive.ObjectID `json:"teamIds" bson:"teamIds"`
	ManagerID      primitive.ObjectID   `json:"managerId,omitempty" bson:"managerId,omitempty" index:"single:1"`
	AvatarURL      string               `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Active         bool                 `json:"active" bson:"active" default:"true"`
	CreatedAt      int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64                `json:"updatedAt" bson:"updatedAt"`
}

// OrgTreeNode một node trong cây tổ chức trả về cho client.
type OrgTreeNode struct {
	Member   Member         `json:"member"`
	Children []*OrgTreeNode `json:"children"`
}
