// Package orghdl - handler cho domain org (Member, Team).
package orghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/handler"
	orgdto "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/dto"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	orgsvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/service"
)

// MemberHandler xử lý các request quản lý thành viên và cây tổ chức.
type MemberHandler struct {
	*basehdl.BaseHandler[models.Member, orgdto.MemberCreateInput, orgdto.MemberUpdateInput]
	memberService *orgsvc.MemberService
}

// NewMemberHandler tạo instance mới của MemberHandler.
func NewMemberHandler() (*MemberHandler, error) {
	memberService, err := orgsvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create member service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Member, orgdto.MemberCreateInput, orgdto.MemberUpdateInput](memberService)
	return &MemberHandler{
		BaseHandler:   baseHandler,
		memberService: memberService,
	}, nil
}

// HandleGetOrgTree trả về rừng cây tổ chức dựng từ managerId của các thành viên active.
func (h *MemberHandler) HandleGetOrgTree(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tree, err := h.memberService.GetOrgTree(c.Context())
		h.HandleResponse(c, tree, err)
		return nil
	})
}
