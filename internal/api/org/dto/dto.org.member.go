// Package orgdto - DTO cho domain org (Member, Team).
package orgdto

// MemberCreateInput đầu vào tạo thành viên.
// UserID (nếu có) gắn hồ sơ với user đã đăng nhập; để trống khi mời thành viên chưa có tài khoản.
type MemberCreateInput struct {
	UserID      string   `json:"userId,omitempty" transform:"str_objectid,map=ID,optional"`
	DisplayName string   `json:"displayName" validate:"required" maxLength:"200"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	Title       string   `json:"title,omitempty" maxLength:"200"`
	Department  string   `json:"department,omitempty" maxLength:"200"`
	Role        string   `json:"role,omitempty" validate:"omitempty,oneof=owner admin manager member guest readonly"`
	TeamIDs     []string `json:"teamIds,omitempty" transform:"str_objectid_slice,optional"`
	ManagerID   string   `json:"managerId,omitempty" transform:"str_objectid,optional"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
}

// MemberUpdateInput đầu vào cập nhật thành viên.
type MemberUpdateInput struct {
	DisplayName string   `json:"displayName,omitempty" maxLength:"200"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	Title       string   `json:"title,omitempty" maxLength:"200"`
	Department  string   `json:"department,omitempty" maxLength:"200"`
	Role        string   `json:"role,omitempty" validate:"omitempty,oneof=owner admin manager member guest readonly"`
	TeamIDs     []string `json:"teamIds,omitempty" transform:"str_objectid_slice,optional"`
	ManagerID   string   `json:"managerId,omitempty" transform:"str_objectid,optional"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
}
