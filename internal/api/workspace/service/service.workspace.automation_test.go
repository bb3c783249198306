// Package wssvc - Test điều kiện chạy thủ công automation rule.
package wssvc

import (
	"errors"
	"testing"

	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/workspace/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
)

func TestRunnableRule(t *testing.T) {
	if err := runnableRule(&models.AutomationRule{Enabled: true}); err != nil {
		t.Errorf("rule đang bật phải được phép chạy, có lỗi %v", err)
	}

	err := runnableRule(&models.AutomationRule{Enabled: false})
	if !errors.Is(err, common.ErrAutomationDisabled) {
		t.Errorf("rule đang tắt phải trả về ErrAutomationDisabled, có %v", err)
	}

	if err := runnableRule(nil); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("rule nil phải trả về ErrNotFound, có %v", err)
	}
}
