// Package chatdto - DTO cho domain chat (Channel, Message).
package chatdto

// ChannelCreateInput đầu vào tạo channel.
type ChannelCreateInput struct {
	Name        string   `json:"name" validate:"required" maxLength:"200"`
	Description string   `json:"description,omitempty" maxLength:"1000"`
	Type        string   `json:"type,omitempty" validate:"omitempty,oneof=public private dm"`
	TeamID      string   `json:"teamId,omitempty" transform:"str_objectid,optional"`
	Members     []string `json:"members,omitempty" transform:"str_objectid_slice,optional"`
	Admins      []string `json:"admins,omitempty" transform:"str_objectid_slice,optional"`
}

// ChannelUpdateInput đầu vào cập nhật channel (field merge, chỉ field có giá trị).
type ChannelUpdateInput struct {
	Name        string `json:"name,omitempty" maxLength:"200"`
	Description string `json:"description,omitempty" maxLength:"1000"`
	TeamID      string `json:"teamId,omitempty" transform:"str_objectid,optional"`
}

// ChannelMemberInput đầu vào thêm/gỡ thành viên hoặc admin của channel.
type ChannelMemberInput struct {
	UserID string `json:"userId" validate:"required" transform:"str_objectid"`
}

// FindOrCreateDMInput đầu vào tìm-hoặc-tạo channel DM.
// Phía còn lại của DM, user hiện tại lấy từ session.
type FindOrCreateDMInput struct {
	UserB string `json:"userB" validate:"required"`
	NameB string `json:"nameB" validate:"required" maxLength:"200"`
}
