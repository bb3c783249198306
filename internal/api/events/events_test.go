package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeDoc struct {
	ChannelID      primitive.ObjectID
	OrganizationID string
}

func TestEmitDataChanged_AllHandlersReceiveEvent(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	received := []string{}

	for i := 0; i < 2; i++ {
		OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
			mu.Lock()
			received = append(received, e.CollectionName)
			mu.Unlock()
			wg.Done()
		})
	}

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "chat_messages",
		Operation:      OpInsert,
	})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler không nhận được event trong 2 giây")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 2 {
		t.Errorf("cả 2 handler phải nhận event, nhận được %d", len(received))
	}
	for _, name := range received {
		if name != "chat_messages" {
			t.Errorf("CollectionName sai: %s", name)
		}
	}
}

func TestEmitDataChanged_PanicHandlerDoesNotAffectOthers(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.Operation == "panic-test" {
			panic("boom")
		}
	})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.Operation == "panic-test" {
			wg.Done()
		}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{Operation: "panic-test"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler sau handler panic phải vẫn chạy được")
	}
}

func TestGetObjectIDField(t *testing.T) {
	channelID := primitive.NewObjectID()
	doc := fakeDoc{ChannelID: channelID}

	if got := GetObjectIDField(doc, "ChannelID"); got != channelID {
		t.Errorf("GetObjectIDField từ value = %s, muốn %s", got.Hex(), channelID.Hex())
	}
	if got := GetObjectIDField(&doc, "ChannelID"); got != channelID {
		t.Errorf("GetObjectIDField từ pointer = %s, muốn %s", got.Hex(), channelID.Hex())
	}
	if got := GetObjectIDField(doc, "KhongTonTai"); !got.IsZero() {
		t.Error("field không tồn tại phải trả về zero ObjectID")
	}
	if got := GetObjectIDField(nil, "ChannelID"); !got.IsZero() {
		t.Error("document nil phải trả về zero ObjectID")
	}
}

func TestGetStringField(t *testing.T) {
	doc := fakeDoc{OrganizationID: "solis-center"}

	if got := GetStringField(doc, "OrganizationID"); got != "solis-center" {
		t.Errorf("GetStringField = %q, muốn solis-center", got)
	}
	if got := GetStringField(doc, "ChannelID"); got != "" {
		t.Error("field không phải string phải trả về chuỗi rỗng")
	}
	if got := GetStringField(nil, "OrganizationID"); got != "" {
		t.Error("document nil phải trả về chuỗi rỗng")
	}
}
