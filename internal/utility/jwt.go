// Package utility - tiện ích tạo và xác thực JWT token.
package utility

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JwtClaims chứa data được mã hóa trong JWT token.
type JwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.RegisteredClaims
}

// tokenLifetime thời gian sống của token (30 ngày, client lưu theo hwid)
const tokenLifetime = 30 * 24 * time.Hour

// CreateToken tạo JWT token mới cho user.
// timeHex và randomNumber làm cho token mỗi lần login là duy nhất (kể cả cùng user cùng giây).
//
// Returns:
// - map với key "token" chứa token đã ký
// - error: Lỗi nếu có
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	now := time.Now()
	claims := &JwtClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("không thể ký JWT token: %w", err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken xác thực chữ ký và parse claims từ token string.
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("không thể parse JWT token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("JWT token không hợp lệ")
	}

	claims, ok := token.Claims.(*JwtClaims)
	if !ok {
		return nil, fmt.Errorf("claims không đúng định dạng")
	}
	return claims, nil
}
