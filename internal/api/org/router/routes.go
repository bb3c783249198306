// Package router đăng ký các route thuộc domain org: Member, Team, cây tổ chức.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/middleware"
	orghdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/handler"
	orgmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	apirouter "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/router"
)

// Register đăng ký tất cả route org lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	memberHandler, err := orghdl.NewMemberHandler()
	if err != nil {
		return fmt.Errorf("failed to create member handler: %w", err)
	}
	// Quản lý thành viên: ghi cần role admin trở lên
	r.RegisterCRUDRoutes(v1, "/member", memberHandler, apirouter.ReadWriteConfig, orgmodels.RoleAdmin)

	// Cây tổ chức: mọi thành viên đã đăng nhập đều xem được
	authMiddleware := middleware.AuthMiddleware("")
	orgContextMiddleware := middleware.OrganizationContextMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/org", "GET", "/tree", []fiber.Handler{authMiddleware, orgContextMiddleware}, memberHandler.HandleGetOrgTree)

	teamHandler, err := orghdl.NewTeamHandler()
	if err != nil {
		return fmt.Errorf("failed to create team handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/team", teamHandler, apirouter.ReadWriteConfig, orgmodels.RoleAdmin)

	return nil
}
