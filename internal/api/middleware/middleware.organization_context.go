package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
)

// OrganizationContextMiddleware gán organization context cho mọi request.
// Hệ thống chạy mô hình single-workspace: toàn bộ dữ liệu thuộc một org duy nhất
// (DEFAULT_ORG_ID, mặc định "solis-center"). Middleware này set organization_id
// vào locals để tầng handler tự động scope filter và gán field organizationId
// khi ghi dữ liệu.
//
// Header X-Organization-ID được chấp nhận nhưng chỉ khi trùng với org mặc định
// (client cũ gửi kèm header này). Giá trị khác bị bỏ qua, không báo lỗi.
func OrganizationContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		orgID := global.ServerConfig.DefaultOrgID

		if requested := c.Get("X-Organization-ID"); requested != "" && requested != orgID {
			// Không cho phép đổi org qua header, giữ nguyên org mặc định
			c.Locals("organization_id_requested", requested)
		}

		c.Locals("organization_id", orgID)
		return c.Next()
	}
}
