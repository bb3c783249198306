package wsdto

// AuditLogCreateInput đầu vào ghi một dòng audit log.
type AuditLogCreateInput struct {
	ActorID      string                 `json:"actorId,omitempty" transform:"str_objectid,optional"`
	ActorEmail   string                 `json:"actorEmail,omitempty" maxLength:"320"`
	Action       string                 `json:"action" validate:"required" maxLength:"100"`
	Resource     string                 `json:"resource" validate:"required" maxLength:"100"`
	ResourceID   string                 `json:"resourceId,omitempty" maxLength:"100"`
	ResourceName string                 `json:"resourceName,omitempty" maxLength:"500"`
	Details      map[string]interface{} `json:"details,omitempty"`
	IPAddress    string                 `json:"ipAddress,omitempty" maxLength:"64"`
	UserAgent    string                 `json:"userAgent,omitempty" maxLength:"500"`
}

// AuditLogUpdateInput tồn tại để thỏa generic của base handler.
// Audit log là append-only, router không mở route update.
type AuditLogUpdateInput struct{}
