package wsdto

// SettingUpsertInput đầu vào upsert một setting theo key.
type SettingUpsertInput struct {
	Key         string      `json:"key" validate:"required" maxLength:"200"`
	Value       interface{} `json:"value" validate:"required"`
	Description string      `json:"description,omitempty" maxLength:"1000"`
	UpdatedBy   string      `json:"updatedBy,omitempty" transform:"str_objectid,optional"`
}

// SettingUpdateInput đầu vào cập nhật setting (ít dùng, surface chính là upsert theo key).
type SettingUpdateInput struct {
	Value       interface{} `json:"value,omitempty"`
	Description string      `json:"description,omitempty" maxLength:"1000"`
	UpdatedBy   string      `json:"updatedBy,omitempty" transform:"str_objectid,optional"`
}
