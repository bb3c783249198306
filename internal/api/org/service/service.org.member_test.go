// Package orgsvc - Test quyết định role khi bootstrap hồ sơ thành viên.
package orgsvc

import (
	"testing"

	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
)

func TestBootstrapRole(t *testing.T) {
	cases := []struct {
		name          string
		ownerCount    int64
		configuredUID string
		firebaseUID   string
		want          string
	}{
		{"chưa có owner, không cấu hình UID", 0, "", "uid-bat-ky", models.RoleOwner},
		{"chưa có owner, UID khớp cấu hình", 0, "uid-chu-so-huu", "uid-chu-so-huu", models.RoleOwner},
		{"chưa có owner, UID không khớp cấu hình", 0, "uid-chu-so-huu", "uid-khac", models.RoleMember},
		{"đã có owner, UID khớp cấu hình", 1, "uid-chu-so-huu", "uid-chu-so-huu", models.RoleMember},
		{"đã có owner, không cấu hình UID", 3, "", "uid-bat-ky", models.RoleMember},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := bootstrapRole(tc.ownerCount, tc.configuredUID, tc.firebaseUID)
			if got != tc.want {
				t.Errorf("bootstrapRole(%d, %q, %q) = %q, muốn %q", tc.ownerCount, tc.configuredUID, tc.firebaseUID, got, tc.want)
			}
		})
	}
}
