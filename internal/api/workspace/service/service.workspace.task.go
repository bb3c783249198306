// Package wssvc - service cho domain workspace (Task, Doc, Automation, AuditLog, Setting).
package wssvc

import (
	"fmt"

	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
)

// TaskService xử lý công việc trong workspace.
type TaskService struct {
	*basesvc.BaseServiceMongoImpl[models.Task]
}

// NewTaskService tạo TaskService mới.
func NewTaskService() (*TaskService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tasks)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Tasks, common.ErrNotFound)
	}
	return &TaskService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Task](coll),
	}, nil
}

// DocService xử lý tài liệu trong workspace.
type DocService struct {
	*basesvc.BaseServiceMongoImpl[models.Doc]
}

// NewDocService tạo DocService mới.
func NewDocService() (*DocService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Docs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Docs, common.ErrNotFound)
	}
	return &DocService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Doc](coll),
	}, nil
}
