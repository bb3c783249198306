package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/auth/dto"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/auth/models"
	authsvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/auth/service"
	basehdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/handler"
	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	orgsvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/service"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/logger"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserChangeInfoInput]
	userService   *authsvc.UserService
	memberService *orgsvc.MemberService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	memberService, err := orgsvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create member service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserChangeInfoInput](userService)
	return &UserHandler{
		BaseHandler:   baseHandler,
		userService:   userService,
		memberService: memberService,
	}, nil
}

// HandleLogout xử lý đăng xuất người dùng
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	var input authdto.UserLogoutInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
		return nil
	}
	err = h.userService.Logout(c.Context(), objID, &input)
	if err == nil {
		logger.LogAuth("logout", c, map[string]interface{}{"user_id": userID})
	}
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleGetProfile lấy thông tin profile của người dùng
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
		return nil
	}
	user, err := h.userService.BaseServiceMongoImpl.FindOneById(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user.Password = ""
	user.Salt = ""
	user.Tokens = nil

	// Kèm hồ sơ thành viên (role, team, manager) nếu đã có trong sơ đồ tổ chức
	member, memberErr := h.memberService.FindByUserID(c.Context(), objID)
	result := map[string]interface{}{"user": user}
	if memberErr == nil {
		result["member"] = member
	}
	h.HandleResponse(c, result, nil)
	return nil
}

// HandleUpdateProfile cập nhật thông tin profile
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	var input authdto.UserChangeInfoInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
		return nil
	}
	update := &basesvc.UpdateData{Set: map[string]interface{}{"name": input.Name}}
	updatedUser, err := h.userService.BaseServiceMongoImpl.UpdateById(c.Context(), objID, update)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	updatedUser.Password = ""
	updatedUser.Salt = ""
	updatedUser.Tokens = nil
	h.HandleResponse(c, updatedUser, nil)
	return nil
}

// HandleLoginWithFirebase đăng nhập bằng Firebase ID token
func (h *UserHandler) HandleLoginWithFirebase(c fiber.Ctx) error {
	var input authdto.FirebaseLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.LoginWithFirebase(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	// Bootstrap member: user đầu tiên đăng nhập được gán role owner,
	// các user sau được tạo hồ sơ member mặc định nếu chưa có
	member, errBoot := h.memberService.EnsureMemberForUser(c.Context(), user)
	if errBoot != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": errBoot.Error()}).Warn("LoginWithFirebase: Lỗi bootstrap member, không fail login")
	}

	logger.LogAuth("login_firebase", c, map[string]interface{}{"user_id": user.ID.Hex(), "email": user.Email})

	user.Password = ""
	user.Salt = ""
	user.Tokens = nil

	result := map[string]interface{}{"user": user}
	if member != nil {
		result["member"] = member
	}
	h.HandleResponse(c, result, nil)
	return nil
}
