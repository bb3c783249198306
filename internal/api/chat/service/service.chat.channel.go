// Package chatsvc - service kênh chat (Channel).
package chatsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	chatdto "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/dto"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/events"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/database"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/utility"
)

// ChannelService xử lý vòng đời channel: tạo, membership, archive, DM dedup, cascade delete.
type ChannelService struct {
	*basesvc.BaseServiceMongoImpl[models.Channel]
	messageCollection *mongo.Collection
}

// NewChannelService tạo ChannelService mới.
func NewChannelService() (*ChannelService, error) {
	channelColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Channels)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Channels, common.ErrNotFound)
	}
	messageColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Messages)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Messages, common.ErrNotFound)
	}
	return &ChannelService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Channel](channelColl),
		messageCollection:    messageColl,
	}, nil
}

// CreateChannel tạo channel mới.
// Channel DM bắt buộc có đúng 2 thành viên khác nhau và đi qua FindOrCreateDM để dedup;
// gọi trực tiếp với type=dm sẽ bị từ chối nếu members không hợp lệ.
// Người tạo luôn nằm trong members và admins.
func (s *ChannelService) CreateChannel(ctx context.Context, channel models.Channel) (*models.Channel, error) {
	if channel.Type == "" {
		channel.Type = models.ChannelTypePublic
	}

	if channel.Type == models.ChannelTypeDM {
		if err := validateDMMembers(channel.Members); err != nil {
			return nil, err
		}
		channel.DMKey = models.BuildDMKey(channel.Members[0], channel.Members[1])
	}

	if !channel.CreatedBy.IsZero() {
		channel.Members = addToIDSet(channel.Members, channel.CreatedBy)
		if channel.Type != models.ChannelTypeDM {
			channel.Admins = addToIDSet(channel.Admins, channel.CreatedBy)
		}
	}

	// admins ⊆ members
	for _, admin := range channel.Admins {
		if !containsID(channel.Members, admin) {
			return nil, common.ErrAdminNotMember
		}
	}

	if channel.PinnedMessages == nil {
		channel.PinnedMessages = []primitive.ObjectID{}
	}
	channel.Archived = false

	created, err := s.InsertOne(ctx, channel)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetAllUserChannels trả về các channel chưa archive mà user thấy được:
// channel public, channel user là thành viên, hoặc channel user tạo.
// Lọc bằng query phía server thay vì tải toàn bộ danh sách về lọc tay.
func (s *ChannelService) GetAllUserChannels(ctx context.Context, userID primitive.ObjectID) ([]models.Channel, error) {
	filter := bson.M{
		"archived": false,
		"$or": []bson.M{
			{"type": models.ChannelTypePublic},
			{"members": userID},
			{"createdBy": userID},
		},
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "lastMessageAt", Value: -1}})
	channels, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	if channels == nil {
		channels = []models.Channel{}
	}
	return channels, nil
}

// FindOrCreateDM tìm hoặc tạo channel DM giữa hai user.
// Dedup bằng dmKey (cặp user id đã sắp xếp) + unique sparse index: hai phía cùng bấm
// "nhắn tin" một lúc thì upsert hội tụ về đúng một channel, không còn race scan-then-create.
func (s *ChannelService) FindOrCreateDM(ctx context.Context, userA primitive.ObjectID, nameA string, userB primitive.ObjectID, nameB string) (*models.Channel, error) {
	if userA.IsZero() || userB.IsZero() || userA == userB {
		return nil, common.ErrDMMemberCount
	}

	dmKey := models.BuildDMKey(userA, userB)
	filter := bson.M{"dmKey": dmKey}

	updateData := &basesvc.UpdateData{
		SetOnInsert: map[string]interface{}{
			"organizationId": global.ServerConfig.DefaultOrgID,
			"name":           nameA + ", " + nameB,
			"type":           models.ChannelTypeDM,
			"dmKey":          dmKey,
			"createdBy":      userA,
			"createdByName":  nameA,
			"members":        []primitive.ObjectID{userA, userB},
			"admins":         []primitive.ObjectID{},
			"pinnedMessages": []primitive.ObjectID{},
			"archived":       false,
		},
	}

	channel, err := s.Upsert(ctx, filter, updateData)
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// AddChannelMember thêm user vào members ($addToSet, an toàn với sửa đổi đồng thời).
func (s *ChannelService) AddChannelMember(ctx context.Context, channelID, userID primitive.ObjectID) (*models.Channel, error) {
	return s.applyMembershipUpdate(ctx, channelID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"members": userID},
	})
}

// RemoveChannelMember gỡ user khỏi members, đồng thời gỡ khỏi admins (admins ⊆ members).
func (s *ChannelService) RemoveChannelMember(ctx context.Context, channelID, userID primitive.ObjectID) (*models.Channel, error) {
	return s.applyMembershipUpdate(ctx, channelID, &basesvc.UpdateData{
		Pull: map[string]interface{}{
			"members": userID,
			"admins":  userID,
		},
	})
}

// AddChannelAdmin thêm user vào admins. User phải là thành viên trước.
func (s *ChannelService) AddChannelAdmin(ctx context.Context, channelID, userID primitive.ObjectID) (*models.Channel, error) {
	channel, err := s.FindOneById(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !containsID(channel.Members, userID) {
		return nil, common.ErrAdminNotMember
	}
	return s.applyMembershipUpdate(ctx, channelID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"admins": userID},
	})
}

// RemoveChannelAdmin gỡ user khỏi admins (vẫn là thành viên).
func (s *ChannelService) RemoveChannelAdmin(ctx context.Context, channelID, userID primitive.ObjectID) (*models.Channel, error) {
	return s.applyMembershipUpdate(ctx, channelID, &basesvc.UpdateData{
		Pull: map[string]interface{}{"admins": userID},
	})
}

func (s *ChannelService) applyMembershipUpdate(ctx context.Context, channelID primitive.ObjectID, updateData *basesvc.UpdateData) (*models.Channel, error) {
	channel, err := s.FindOneById(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if err := membershipMutable(&channel); err != nil {
		return nil, err
	}
	updated, err := s.UpdateById(ctx, channelID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// membershipMutable kiểm tra channel có cho phép thay đổi members/admins không.
// DM luôn có đúng 2 thành viên cố định nên mọi thay đổi membership đều bị từ chối.
func membershipMutable(channel *models.Channel) error {
	if channel == nil {
		return common.ErrNotFound
	}
	if channel.Type == models.ChannelTypeDM {
		return common.ErrDMMemberFixed
	}
	return nil
}

// UpdateChannelInfo cập nhật thông tin hiển thị của channel theo kiểu field merge:
// chỉ field có giá trị trong input mới được ghi đè. Không đụng tới members, admins, type.
func (s *ChannelService) UpdateChannelInfo(ctx context.Context, channelID primitive.ObjectID, input *chatdto.ChannelUpdateInput) (*models.Channel, error) {
	updateData := buildChannelInfoUpdate(input)
	if updateData == nil {
		return nil, common.ErrInvalidInput
	}
	channel, err := s.UpdateById(ctx, channelID, updateData)
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// buildChannelInfoUpdate gom các field có giá trị của input thành $set.
// Trả về nil nếu input không có field nào để cập nhật.
func buildChannelInfoUpdate(input *chatdto.ChannelUpdateInput) *basesvc.UpdateData {
	if input == nil {
		return nil
	}
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.TeamID != "" {
		if teamID := utility.String2ObjectID(input.TeamID); !teamID.IsZero() {
			set["teamId"] = teamID
		}
	}
	if len(set) == 0 {
		return nil
	}
	return &basesvc.UpdateData{Set: set}
}

// ArchiveChannel đánh dấu channel đã lưu trữ (ẩn khỏi danh sách, không xóa dữ liệu).
func (s *ChannelService) ArchiveChannel(ctx context.Context, channelID primitive.ObjectID) (*models.Channel, error) {
	channel, err := s.UpdateById(ctx, channelID, &basesvc.UpdateData{
		Set: map[string]interface{}{"archived": true},
	})
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// UnarchiveChannel mở lại channel đã lưu trữ.
func (s *ChannelService) UnarchiveChannel(ctx context.Context, channelID primitive.ObjectID) (*models.Channel, error) {
	channel, err := s.UpdateById(ctx, channelID, &basesvc.UpdateData{
		Set: map[string]interface{}{"archived": false},
	})
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// DeleteChannelCascade xóa cứng channel và toàn bộ message con trong cùng một transaction.
// Khi MongoDB không hỗ trợ transaction (standalone), fallback ghi tuần tự: xóa message
// trước rồi mới xóa channel, nếu bước nào thất bại giữa chừng thì channel vẫn còn và
// lần xóa sau dọn nốt, không để message mồ côi không truy cập được.
func (s *ChannelService) DeleteChannelCascade(ctx context.Context, channelID primitive.ObjectID) error {
	channel, err := s.FindOneById(ctx, channelID)
	if err != nil {
		return err
	}

	_, err = database.WithTransaction(ctx, global.MongoDB_Session, func(sessCtx mongo.SessionContext) (interface{}, error) {
		result, err := s.messageCollection.DeleteMany(sessCtx, cascadeMessageFilter(channelID))
		if err != nil {
			return nil, err
		}
		if _, err := s.Collection().DeleteOne(sessCtx, bson.M{"_id": channelID}); err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"channel_id":    channelID.Hex(),
			"message_count": result.DeletedCount,
		}).Info("DeleteChannelCascade: Đã xóa channel cùng message trong transaction")
		return nil, nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"channel_id": channelID.Hex(),
			"error":      err.Error(),
		}).Warn("DeleteChannelCascade: Transaction thất bại, fallback xóa tuần tự")

		result, err := s.messageCollection.DeleteMany(ctx, cascadeMessageFilter(channelID))
		if err != nil {
			return common.ConvertMongoError(err)
		}
		logrus.WithFields(logrus.Fields{
			"channel_id":    channelID.Hex(),
			"message_count": result.DeletedCount,
		}).Info("DeleteChannelCascade: Đã xóa message của channel")
		return s.DeleteById(ctx, channelID)
	}

	// Nhánh transaction đi qua collection thô nên tự phát event delete cho channel
	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.Collection().Name(),
		Operation:      events.OpDelete,
		Document:       channel,
	})
	return nil
}

// cascadeMessageFilter khớp toàn bộ message thuộc channel sắp bị xóa.
func cascadeMessageFilter(channelID primitive.ObjectID) bson.M {
	return bson.M{"channelId": channelID}
}

// CanUserReadChannel kiểm tra user có quyền đọc channel không:
// public đọc được bởi mọi thành viên org, private/dm chỉ members (hoặc người tạo).
func CanUserReadChannel(channel *models.Channel, userID primitive.ObjectID) bool {
	if channel == nil {
		return false
	}
	if channel.Type == models.ChannelTypePublic {
		return true
	}
	return containsID(channel.Members, userID) || channel.CreatedBy == userID
}

// validateDMMembers kiểm tra members của DM: đúng 2 user khác nhau.
func validateDMMembers(members []primitive.ObjectID) error {
	if len(members) != 2 || members[0] == members[1] || members[0].IsZero() || members[1].IsZero() {
		return common.ErrDMMemberCount
	}
	return nil
}

// containsID kiểm tra id có trong danh sách không.
func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// addToIDSet thêm id vào danh sách nếu chưa có.
func addToIDSet(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	if containsID(ids, id) {
		return ids
	}
	return append(ids, id)
}
