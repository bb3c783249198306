package chatdto

// AttachmentInput file đính kèm gửi kèm message.
type AttachmentInput struct {
	Name string `json:"name" validate:"required" maxLength:"500"`
	URL  string `json:"url" validate:"required" maxLength:"2000"`
	Size int64  `json:"size,omitempty"`
	Mime string `json:"mime,omitempty" maxLength:"200"`
}

// MessageSendInput đầu vào gửi message mới vào channel.
type MessageSendInput struct {
	Content     string            `json:"content" validate:"required" maxLength:"10000"`
	Type        string            `json:"type,omitempty" validate:"omitempty,oneof=text system file"`
	ReplyTo     string            `json:"replyTo,omitempty" transform:"str_objectid,optional"`
	Mentions    []string          `json:"mentions,omitempty" transform:"str_objectid_slice,optional"`
	Attachments []AttachmentInput `json:"attachments,omitempty"`
}

// MessageEditInput đầu vào sửa nội dung message.
type MessageEditInput struct {
	Content string `json:"content" validate:"required" maxLength:"10000"`
}

// ReactionInput đầu vào thêm/gỡ reaction.
type ReactionInput struct {
	Emoji string `json:"emoji" validate:"required" maxLength:"50"`
}
