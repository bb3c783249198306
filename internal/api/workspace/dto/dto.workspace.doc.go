package wsdto

// DocCreateInput đầu vào tạo tài liệu.
type DocCreateInput struct {
	Title     string   `json:"title" validate:"required" maxLength:"500"`
	Content   string   `json:"content,omitempty"`
	TeamID    string   `json:"teamId,omitempty" transform:"str_objectid,optional"`
	Tags      []string `json:"tags,omitempty"`
	CreatedBy string   `json:"createdBy,omitempty" transform:"str_objectid,optional"`
}

// DocUpdateInput đầu vào cập nhật tài liệu.
type DocUpdateInput struct {
	Title        string   `json:"title,omitempty" maxLength:"500"`
	Content      string   `json:"content,omitempty"`
	TeamID       string   `json:"teamId,omitempty" transform:"str_objectid,optional"`
	Tags         []string `json:"tags,omitempty"`
	LastEditedBy string   `json:"lastEditedBy,omitempty" transform:"str_objectid,optional"`
	Version      int64    `json:"version,omitempty"`
	Archived     bool     `json:"archived,omitempty"`
}
