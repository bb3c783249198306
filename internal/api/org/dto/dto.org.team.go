package orgdto

// TeamCreateInput đầu vào tạo phòng ban.
type TeamCreateInput struct {
	Name        string `json:"name" validate:"required" maxLength:"200"`
	Description string `json:"description,omitempty" maxLength:"1000"`
	LeadID      string `json:"leadId,omitempty" transform:"str_objectid,optional"`
	Color       string `json:"color,omitempty" maxLength:"20"`
}

// TeamUpdateInput đầu vào cập nhật phòng ban.
type TeamUpdateInput struct {
	Name        string `json:"name,omitempty" maxLength:"200"`
	Description string `json:"description,omitempty" maxLength:"1000"`
	LeadID      string `json:"leadId,omitempty" transform:"str_objectid,optional"`
	Color       string `json:"color,omitempty" maxLength:"20"`
}
