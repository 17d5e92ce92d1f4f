package attendance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Attendance struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  string             `bson:"student_id" json:"student"`
	Date       time.Time          `bson:"date" json:"date"`
	Status     string             `bson:"status" json:"status"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
