// Package orgsvc - service thành viên (Member).
package orgsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/auth/models"
	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
)

// MemberService xử lý hồ sơ thành viên và cây tổ chức.
type MemberService struct {
	*basesvc.BaseServiceMongoImpl[models.Member]
}

// NewMemberService tạo MemberService mới.
func NewMemberService() (*MemberService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Members)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Members, common.ErrNotFound)
	}
	return &MemberService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Member](coll),
	}, nil
}

// FindByUserID tìm hồ sơ thành viên theo user ID (member._id = user._id).
func (s *MemberService) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Member, error) {
	member, err := s.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// EnsureMemberForUser đảm bảo user có hồ sơ thành viên sau khi đăng nhập.
// Khi chưa có owner: nếu FIREBASE_OWNER_UID được cấu hình thì chỉ user mang UID đó
// được gán owner, không cấu hình thì user đầu tiên đăng nhập làm owner (tối đa một owner).
// Các user khác được tạo hồ sơ với role mặc định nếu chưa có.
func (s *MemberService) EnsureMemberForUser(ctx context.Context, user *authmodels.User) (*models.Member, error) {
	if user == nil || user.ID.IsZero() {
		return nil, common.ErrInvalidInput
	}

	existing, err := s.FindByUserID(ctx, user.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	ownerCount, err := s.CountDocuments(ctx, bson.M{"role": models.RoleOwner})
	if err != nil {
		return nil, err
	}
	role := bootstrapRole(ownerCount, global.ServerConfig.FirebaseOwnerUID, user.FirebaseUID)
	if role == models.RoleOwner {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "firebase_uid": user.FirebaseUID}).Info("EnsureMemberForUser: Chưa có owner, gán user này làm owner")
	}

	member := models.Member{
		ID:             user.ID,
		OrganizationID: global.ServerConfig.DefaultOrgID,
		DisplayName:    user.Name,
		Email:          user.Email,
		Role:           role,
		AvatarURL:      user.AvatarURL,
		Active:         true,
	}
	created, err := s.InsertOne(ctx, member)
	if err != nil {
		// Hai thiết bị cùng login lần đầu có thể đua nhau insert, lấy lại bản đã có
		if errors.Is(err, common.ErrDuplicate) {
			return s.FindByUserID(ctx, user.ID)
		}
		return nil, err
	}
	return &created, nil
}

// DeleteById chặn xóa thành viên khi còn người báo cáo trực tiếp hoặc task đang được giao.
func (s *MemberService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := basesvc.ValidateBeforeDeleteMember(ctx, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// bootstrapRole quyết định role cho hồ sơ thành viên mới.
// Owner chỉ được gán khi chưa có owner nào và user khớp FIREBASE_OWNER_UID
// (hoặc biến này không được cấu hình).
func bootstrapRole(ownerCount int64, configuredOwnerUID, firebaseUID string) string {
	if ownerCount > 0 {
		return models.RoleMember
	}
	if configuredOwnerUID != "" && configuredOwnerUID != firebaseUID {
		return models.RoleMember
	}
	return models.RoleOwner
}

// GetOrgTree trả về rừng cây tổ chức của toàn bộ thành viên đang active.
func (s *MemberService) GetOrgTree(ctx context.Context) ([]*models.OrgTreeNode, error) {
	members, err := s.Find(ctx, bson.M{"active": true}, nil)
	if err != nil {
		return nil, err
	}
	return BuildOrgTree(members), nil
}
