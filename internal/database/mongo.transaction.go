package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// WithTransaction chạy fn trong một multi-document transaction.
// Dùng cho các cặp ghi phải phản ánh cùng một sự kiện logic
// (ví dụ: flag pinned trên message + mảng pinnedMessages trên channel).
//
// Yêu cầu MongoDB chạy dạng replica set; với standalone, driver trả lỗi
// và caller nên fallback sang ghi tuần tự.
func WithTransaction(ctx context.Context, client *mongo.Client, fn func(sessCtx mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	session, err := client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	return session.WithTransaction(ctx, fn, txnOpts)
}
