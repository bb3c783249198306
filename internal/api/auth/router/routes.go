// Package router đăng ký các route thuộc domain auth: System, Auth, User.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/auth/handler"
	basehdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/handler"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/middleware"
	orgmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	apirouter "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/router"
)

// Register đăng ký tất cả route auth (system, auth, user) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	router.Post("/auth/login/firebase", userHandler.HandleLoginWithFirebase)
	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)

	// Danh sách user chỉ dành cho admin trở lên (đọc), không mở ghi qua CRUD
	r.RegisterCRUDRoutes(router, "/user", userHandler, apirouter.ReadOnlyConfig, orgmodels.RoleAdmin)
	return nil
}
