package worker

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSameIDSet(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	tests := []struct {
		name string
		x    []primitive.ObjectID
		y    []primitive.ObjectID
		want bool
	}{
		{"hai danh sách rỗng bằng nhau", nil, []primitive.ObjectID{}, true},
		{"cùng phần tử cùng thứ tự", []primitive.ObjectID{a, b}, []primitive.ObjectID{a, b}, true},
		{"cùng phần tử khác thứ tự", []primitive.ObjectID{a, b, c}, []primitive.ObjectID{c, a, b}, true},
		{"khác độ dài", []primitive.ObjectID{a}, []primitive.ObjectID{a, b}, false},
		{"khác phần tử", []primitive.ObjectID{a, b}, []primitive.ObjectID{a, c}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameIDSet(tt.x, tt.y); got != tt.want {
				t.Errorf("sameIDSet = %v, muốn %v", got, tt.want)
			}
		})
	}
}
