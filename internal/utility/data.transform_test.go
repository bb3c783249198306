package utility

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag(t *testing.T) {
	tests := []struct {
		name         string
		tag          string
		wantType     string
		wantOptional bool
		wantRequired bool
		wantMapTo    string
		wantFormat   string
	}{
		{"tag rỗng", "", "", false, false, "", "2006-01-02T15:04:05"},
		{"chỉ có type", "str_objectid", "str_objectid", false, false, "", "2006-01-02T15:04:05"},
		{"type với optional", "str_objectid,optional", "str_objectid", true, false, "", "2006-01-02T15:04:05"},
		{"type với required", "str_objectid,required", "str_objectid", false, true, "", "2006-01-02T15:04:05"},
		{"map sang field khác", "str_objectid,map=ManagerID,optional", "str_objectid", true, false, "ManagerID", "2006-01-02T15:04:05"},
		{"format tùy chỉnh", "str_time,format=2006-01-02", "str_time", false, false, "", "2006-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ParseTransformTag(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, config.Type)
			assert.Equal(t, tt.wantOptional, config.Optional)
			assert.Equal(t, tt.wantRequired, config.Required)
			assert.Equal(t, tt.wantMapTo, config.MapTo)
			assert.Equal(t, tt.wantFormat, config.Format)
		})
	}
}

func TestTransformFieldValue_ObjectID(t *testing.T) {
	config, err := ParseTransformTag("str_objectid")
	require.NoError(t, err)

	id := primitive.NewObjectID()
	got, err := TransformFieldValue(id.Hex(), config, reflect.TypeOf(primitive.ObjectID{}))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	// Hex không hợp lệ phải trả về lỗi
	_, err = TransformFieldValue("không phải hex", config, reflect.TypeOf(primitive.ObjectID{}))
	assert.Error(t, err)
}

func TestTransformFieldValue_ObjectIDSlice(t *testing.T) {
	config, err := ParseTransformTag("str_objectid_slice")
	require.NoError(t, err)

	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	got, err := TransformFieldValue([]string{a.Hex(), "", b.Hex()}, config, reflect.TypeOf([]primitive.ObjectID{}))
	require.NoError(t, err)

	ids, ok := got.([]primitive.ObjectID)
	require.True(t, ok, "kết quả phải là []primitive.ObjectID")
	// Chuỗi rỗng bị bỏ qua, không tạo NilObjectID
	assert.Equal(t, []primitive.ObjectID{a, b}, ids)

	// Phần tử hex hỏng làm fail cả slice
	_, err = TransformFieldValue([]string{a.Hex(), "xxx"}, config, reflect.TypeOf([]primitive.ObjectID{}))
	assert.Error(t, err)
}

func TestTransformFieldValue_OptionalAndRequired(t *testing.T) {
	optional, err := ParseTransformTag("str_objectid,optional")
	require.NoError(t, err)
	got, err := TransformFieldValue("", optional, reflect.TypeOf(primitive.ObjectID{}))
	require.NoError(t, err)
	assert.Nil(t, got, "optional với giá trị rỗng phải trả về nil để bỏ qua field")

	required, err := ParseTransformTag("str_objectid,required")
	require.NoError(t, err)
	_, err = TransformFieldValue("", required, reflect.TypeOf(primitive.ObjectID{}))
	assert.Error(t, err, "required với giá trị rỗng phải trả về lỗi")

	_, err = TransformFieldValue(nil, required, reflect.TypeOf(primitive.ObjectID{}))
	assert.Error(t, err, "required với giá trị nil phải trả về lỗi")
}

func TestTransformFieldValue_Time(t *testing.T) {
	config, err := ParseTransformTag("str_time,format=2006-01-02")
	require.NoError(t, err)

	got, err := TransformFieldValue("2026-01-15", config, reflect.TypeOf(int64(0)))
	require.NoError(t, err)

	ts, ok := got.(int64)
	require.True(t, ok)
	assert.Greater(t, ts, int64(0), "timestamp phải dương")

	_, err = TransformFieldValue("15/01/2026", config, reflect.TypeOf(int64(0)))
	assert.Error(t, err, "sai format phải trả về lỗi")
}

func TestTransformFieldValue_Bool(t *testing.T) {
	config, err := ParseTransformTag("str_bool")
	require.NoError(t, err)

	got, err := TransformFieldValue("true", config, reflect.TypeOf(false))
	require.NoError(t, err)
	assert.Equal(t, true, got)

	got, err = TransformFieldValue("false", config, reflect.TypeOf(false))
	require.NoError(t, err)
	assert.Equal(t, false, got)
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	got := String2ObjectID(id.Hex())
	assert.Equal(t, id, got)

	// Hex hỏng trả về zero ObjectID
	assert.True(t, String2ObjectID("xxx").IsZero())
}
