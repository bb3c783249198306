package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/auth/models"
	authsvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/auth/service"
	orgmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	orgsvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/service"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/logger"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/utility"
)

// Session thông tin phiên làm việc của request, set vào locals "session".
// Handler nhận session qua locals thay vì đọc global state.
type Session struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD   *authsvc.UserService
	MemberCRUD *orgsvc.MemberService
	Cache      *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	newManager.UserCRUD = userService

	memberService, err := orgsvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create member service: %v", err)
	}
	newManager.MemberCRUD = memberService

	// Cache member theo user với thời gian sống 5 phút, dọn dẹp 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// getMemberForUser lấy hồ sơ thành viên của user từ cache hoặc database.
func (am *AuthManager) getMemberForUser(ctx context.Context, user *authmodels.User) (*orgmodels.Member, error) {
	cacheKey := "member:" + user.ID.Hex()
	if cached, found := am.Cache.Get(cacheKey); found {
		member := cached.(orgmodels.Member)
		return &member, nil
	}

	member, err := am.MemberCRUD.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	am.Cache.Set(cacheKey, *member)
	return member, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// minRole là role tối thiểu (theo thứ bậc readonly < guest < member < manager < admin < owner)
// để truy cập route. minRole rỗng nghĩa là chỉ cần đăng nhập.
func AuthMiddleware(minRole string) fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Xác thực chữ ký và hạn token trước khi chạm database
		if _, parseErr := utility.ParseToken(global.ServerConfig.JwtSecret, token); parseErr != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": parseErr.Error(),
			}).Warn("❌ [AUTH] Invalid token signature")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Tìm user có token
		// Ưu tiên query field "token" (token mới nhất) trước vì nó được cập nhật mỗi lần login
		// Nếu không tìm thấy, query trong array "tokens" (tokens theo hwid)
		var user authmodels.User
		var err error
		var query bson.M

		query = bson.M{"token": token}
		user, err = authManager.UserCRUD.FindOne(context.Background(), query, nil)

		if err != nil {
			query = bson.M{
				"tokens": bson.M{
					"$elemMatch": bson.M{
						"jwtToken": token,
					},
				},
			}
			user, err = authManager.UserCRUD.FindOne(context.Background(), query, nil)
		}

		if err != nil {
			// Chỉ log khi không tìm thấy token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		session := Session{
			UserID:      user.ID.Hex(),
			DisplayName: user.Name,
			Email:       user.Email,
		}

		// Resolve hồ sơ thành viên cho session (nếu có)
		member, memberErr := authManager.getMemberForUser(context.Background(), &user)
		if memberErr == nil {
			c.Locals("member", *member)
			session.Role = member.Role
			if member.DisplayName != "" {
				session.DisplayName = member.DisplayName
			}
		}
		c.Locals("session", session)

		// Nếu không yêu cầu role tối thiểu, chỉ cần xác thực là đủ
		if minRole == "" {
			return c.Next()
		}

		// Route yêu cầu role: user phải có hồ sơ thành viên active
		if memberErr != nil || !member.Active {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id": user.ID.Hex(),
				"path":    c.Path(),
			}).Warn("❌ [AUTH] User has no active member profile, denying access")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Người dùng chưa có hồ sơ thành viên trong workspace. Vui lòng liên hệ quản trị viên.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// So sánh thứ bậc role
		if orgmodels.RoleRank(member.Role) < orgmodels.RoleRank(minRole) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":       user.ID.Hex(),
				"user_role":     member.Role,
				"required_role": minRole,
				"path":          c.Path(),
			}).Warn("❌ [AUTH] User role insufficient for this route")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không có quyền truy cập. Thao tác này yêu cầu role "+minRole+" trở lên.",
				common.StatusForbidden,
				map[string]interface{}{
					"requiredRole": minRole,
					"currentRole":  member.Role,
				},
			))
			return nil
		}

		return c.Next()
	}
}
