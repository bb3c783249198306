// Package orgsvc - service phòng ban (Team).
package orgsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
)

// TeamService xử lý CRUD phòng ban.
type TeamService struct {
	*basesvc.BaseServiceMongoImpl[models.Team]
}

// NewTeamService tạo TeamService mới.
func NewTeamService() (*TeamService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Teams)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Teams, common.ErrNotFound)
	}
	return &TeamService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Team](coll),
	}, nil
}

// DeleteById chặn xóa team khi còn thành viên đang thuộc team đó.
func (s *TeamService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := basesvc.ValidateBeforeDeleteTeam(ctx, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
