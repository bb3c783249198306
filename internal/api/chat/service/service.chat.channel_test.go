// Package chatsvc - Test các hàm thuần của channel: quyền đọc, DM members, id set.
package chatsvc

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	chatdto "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/dto"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
)

func TestCanUserReadChannel(t *testing.T) {
	member := primitive.NewObjectID()
	creator := primitive.NewObjectID()
	outsider := primitive.NewObjectID()

	publicChannel := &models.Channel{Type: models.ChannelTypePublic}
	privateChannel := &models.Channel{
		Type:      models.ChannelTypePrivate,
		CreatedBy: creator,
		Members:   []primitive.ObjectID{member},
	}

	if !CanUserReadChannel(publicChannel, outsider) {
		t.Error("channel public phải đọc được bởi mọi user")
	}
	if !CanUserReadChannel(privateChannel, member) {
		t.Error("thành viên phải đọc được channel private")
	}
	if !CanUserReadChannel(privateChannel, creator) {
		t.Error("người tạo phải đọc được channel private dù không nằm trong members")
	}
	if CanUserReadChannel(privateChannel, outsider) {
		t.Error("người ngoài không được đọc channel private")
	}
	if CanUserReadChannel(nil, member) {
		t.Error("channel nil phải trả về false")
	}
}

func TestValidateDMMembers(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	if err := validateDMMembers([]primitive.ObjectID{a, b}); err != nil {
		t.Errorf("2 user khác nhau phải hợp lệ, có lỗi: %v", err)
	}

	invalid := [][]primitive.ObjectID{
		{a},                             // thiếu người
		{a, b, primitive.NewObjectID()}, // thừa người
		{a, a},                          // trùng nhau
		{a, primitive.NilObjectID},      // id rỗng
	}
	for i, members := range invalid {
		err := validateDMMembers(members)
		if !errors.Is(err, common.ErrDMMemberCount) {
			t.Errorf("case %d: phải trả về ErrDMMemberCount, có %v", i, err)
		}
	}
}

func TestBuildDMKey_OrderIndependent(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	if models.BuildDMKey(a, b) != models.BuildDMKey(b, a) {
		t.Error("dmKey phải giống nhau bất kể thứ tự tham số")
	}
	if models.BuildDMKey(a, b) == models.BuildDMKey(a, primitive.NewObjectID()) {
		t.Error("cặp user khác nhau phải cho dmKey khác nhau")
	}
}

func TestMembershipMutable(t *testing.T) {
	if err := membershipMutable(&models.Channel{Type: models.ChannelTypePublic}); err != nil {
		t.Errorf("channel public phải cho thay đổi membership, có lỗi: %v", err)
	}
	if err := membershipMutable(&models.Channel{Type: models.ChannelTypePrivate}); err != nil {
		t.Errorf("channel private phải cho thay đổi membership, có lỗi: %v", err)
	}

	// DM có đúng 2 thành viên cố định, gỡ một người sẽ phá cấu trúc channel
	err := membershipMutable(&models.Channel{Type: models.ChannelTypeDM})
	if !errors.Is(err, common.ErrDMMemberFixed) {
		t.Errorf("channel DM phải trả về ErrDMMemberFixed, có %v", err)
	}
	if err := membershipMutable(nil); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("channel nil phải trả về ErrNotFound, có %v", err)
	}
}

func TestBuildChannelInfoUpdate(t *testing.T) {
	teamID := primitive.NewObjectID()

	tests := []struct {
		name     string
		input    *chatdto.ChannelUpdateInput
		wantNil  bool
		wantKeys []string
	}{
		{"input nil không có gì để cập nhật", nil, true, nil},
		{"input rỗng không có gì để cập nhật", &chatdto.ChannelUpdateInput{}, true, nil},
		{"chỉ đổi tên", &chatdto.ChannelUpdateInput{Name: "phòng kế toán"}, false, []string{"name"}},
		{"đổi đủ ba field", &chatdto.ChannelUpdateInput{Name: "x", Description: "y", TeamID: teamID.Hex()}, false, []string{"name", "description", "teamId"}},
		{"teamId sai định dạng bị bỏ qua", &chatdto.ChannelUpdateInput{TeamID: "không phải hex"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildChannelInfoUpdate(tt.input)
			if tt.wantNil {
				if got != nil {
					t.Errorf("phải trả về nil, có %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("không được trả về nil khi input có field hợp lệ")
			}
			if len(got.Set) != len(tt.wantKeys) {
				t.Errorf("$set phải có %d field, có %d", len(tt.wantKeys), len(got.Set))
			}
			for _, key := range tt.wantKeys {
				if _, ok := got.Set[key]; !ok {
					t.Errorf("$set thiếu field %q", key)
				}
			}
		})
	}
}

func TestBuildChannelInfoUpdate_TeamIDConverted(t *testing.T) {
	teamID := primitive.NewObjectID()
	got := buildChannelInfoUpdate(&chatdto.ChannelUpdateInput{TeamID: teamID.Hex()})
	if got == nil {
		t.Fatal("teamId hợp lệ phải tạo được update")
	}
	if converted, ok := got.Set["teamId"].(primitive.ObjectID); !ok || converted != teamID {
		t.Errorf("teamId phải được chuyển sang ObjectID, có %v", got.Set["teamId"])
	}
}

func TestAddToIDSet(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	ids := addToIDSet(nil, a)
	if len(ids) != 1 {
		t.Fatalf("thêm vào danh sách rỗng phải cho 1 phần tử, có %d", len(ids))
	}

	ids = addToIDSet(ids, a)
	if len(ids) != 1 {
		t.Error("thêm id đã có không được nhân đôi")
	}

	ids = addToIDSet(ids, b)
	if len(ids) != 2 || !containsID(ids, b) {
		t.Error("thêm id mới phải xuất hiện trong danh sách")
	}
}

func TestCascadeMessageFilter_ScopedToChannel(t *testing.T) {
	channelID := primitive.NewObjectID()
	filter := cascadeMessageFilter(channelID)

	if len(filter) != 1 {
		t.Fatalf("filter cascade chỉ được khoanh theo channelId, có %d điều kiện", len(filter))
	}
	if got, ok := filter["channelId"].(primitive.ObjectID); !ok || got != channelID {
		t.Errorf("filter phải khớp đúng channel bị xóa, có %v", filter["channelId"])
	}
}
