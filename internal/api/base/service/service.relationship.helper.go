package basesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
)

// RelationshipCheck dinh nghia mot quan he can kiem tra
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
}

// CheckRelationshipExists kiem tra co record nao trong collection khac dang tro toi record nay khong
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// ValidateBeforeDeleteTeam kiem tra cac quan he cua Team truoc khi xoa
func ValidateBeforeDeleteTeam(ctx context.Context, teamID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Members, FieldName: "teamIds", ErrorMessage: "Khong the xoa team vi co %d thanh vien dang thuoc team nay. Vui long chuyen cac thanh vien sang team khac truoc."},
	}
	return CheckRelationshipExists(ctx, teamID, checks)
}

// ValidateBeforeDeleteMember kiem tra cac quan he cua Member truoc khi xoa
func ValidateBeforeDeleteMember(ctx context.Context, memberID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Members, FieldName: "managerId", ErrorMessage: "Khong the xoa thanh vien vi co %d thanh vien khac dang bao cao truc tiep. Vui long doi quan ly cua ho truoc."},
		{CollectionName: global.MongoDB_ColNames.Tasks, FieldName: "assigneeId", ErrorMessage: "Khong the xoa thanh vien vi co %d task dang duoc giao. Vui long giao lai cac task truoc.", Optional: true},
	}
	return CheckRelationshipExists(ctx, memberID, checks)
}
