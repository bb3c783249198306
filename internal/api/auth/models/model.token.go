// Package models - Token thuộc domain auth.
package models

// Token token theo hwid (mỗi thiết bị một token).
type Token struct {
	Hwid     string `json:"hwid" bson:"hwid,omitempty"`
	JwtToken string `json:"jwtToken,omitempty" bson:"jwtToken,omitempty"`
}
