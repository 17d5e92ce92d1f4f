package record

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Activity struct {
	Date    time.Time `bson:"date" json:"date"`
	Name    string    `bson:"name" json:"name"`
	Score   float64   `bson:"score" json:"score"`
	Remarks string    `bson:"remarks" json:"remarks"`
}

type StudentRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  string             `bson:"student_id" json:"student"`
	Activities []Activity         `bson:"activities" json:"activities"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
