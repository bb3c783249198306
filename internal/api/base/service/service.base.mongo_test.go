// Package basesvc - Test chuyển đổi update document về UpdateData.
package basesvc

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/events"
)

func TestToUpdateData_PassthroughPointer(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"name": "solis"}}
	got, err := ToUpdateData(original)
	require.NoError(t, err)
	assert.Same(t, original, got, "con trỏ UpdateData phải được trả về nguyên vẹn")
}

func TestToUpdateData_ValueConvertedToPointer(t *testing.T) {
	original := UpdateData{Unset: map[string]interface{}{"email": ""}}
	got, err := ToUpdateData(original)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, original.Unset, got.Unset)
}

func TestToUpdateData_OperatorMap(t *testing.T) {
	data := bson.M{
		"$set":      bson.M{"name": "solis"},
		"$addToSet": bson.M{"members": "abc"},
		"$unset":    bson.M{"dmKey": ""},
	}

	got, err := ToUpdateData(data)
	require.NoError(t, err)

	assert.Equal(t, "solis", got.Set["name"])
	assert.Equal(t, "abc", got.AddToSet["members"])
	assert.Contains(t, got.Unset, "dmKey")
	assert.Empty(t, got.Push, "operator không có trong input phải để trống")
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	data := bson.M{"title": "task mới", "status": "todo"}

	got, err := ToUpdateData(data)
	require.NoError(t, err)

	assert.Equal(t, "task mới", got.Set["title"])
	assert.Equal(t, "todo", got.Set["status"])
	assert.Empty(t, got.Unset)
	assert.Empty(t, got.AddToSet)
}

func TestToUpdateData_StructWrappedInSet(t *testing.T) {
	type patch struct {
		Name string `bson:"name"`
	}

	got, err := ToUpdateData(patch{Name: "solis"})
	require.NoError(t, err)
	assert.Equal(t, "solis", got.Set["name"])
}

func TestEmitDeleteEvents_EachDocGetsDeleteEvent(t *testing.T) {
	type doc struct{ Name string }

	const collName = "emit_delete_events_test"
	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	var received []events.DataChangeEvent
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName != collName {
			return
		}
		mu.Lock()
		received = append(received, e)
		mu.Unlock()
		wg.Done()
	})

	emitDeleteEvents(context.Background(), collName, []doc{{Name: "a"}, {Name: "b"}})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("xóa hàng loạt phải phát event delete cho từng document")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	names := map[string]bool{}
	for _, e := range received {
		assert.Equal(t, events.OpDelete, e.Operation)
		d, ok := e.Document.(doc)
		require.True(t, ok, "Document phải là bản ghi trước khi xóa")
		names[d.Name] = true
	}
	assert.True(t, names["a"] && names["b"], "mỗi document bị xóa phải có event riêng")
}
