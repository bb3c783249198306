package orghdl

import (
	"fmt"

	basehdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/handler"
	orgdto "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/dto"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	orgsvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/service"
)

// TeamHandler xử lý CRUD phòng ban qua base handler.
type TeamHandler struct {
	*basehdl.BaseHandler[models.Team, orgdto.TeamCreateInput, orgdto.TeamUpdateInput]
	teamService *orgsvc.TeamService
}

// NewTeamHandler tạo instance mới của TeamHandler.
func NewTeamHandler() (*TeamHandler, error) {
	teamService, err := orgsvc.NewTeamService()
	if err != nil {
		return nil, fmt.Errorf("failed to create team service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Team, orgdto.TeamCreateInput, orgdto.TeamUpdateInput](teamService)
	return &TeamHandler{
		BaseHandler: baseHandler,
		teamService: teamService,
	}, nil
}
