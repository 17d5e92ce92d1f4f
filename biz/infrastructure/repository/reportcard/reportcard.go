package reportcard

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Grade struct {
	Subject string `bson:"subject" json:"subject"`
	Grade   string `bson:"grade" json:"grade"`
}

type ReportCard struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  string             `bson:"student_id" json:"student"`
	Term       string             `bson:"term" json:"term"`
	Grades     []Grade            `bson:"grades" json:"grades"`
	Comments   string             `bson:"comments" json:"comments"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updatedAt"`
}
