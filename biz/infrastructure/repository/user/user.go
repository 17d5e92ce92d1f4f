package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"`
	Role           string             `bson:"role" json:"role"`
	LinkedStudents []string           `bson:"linked_students" json:"linkedStudents"`
	CreateTime     time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime     time.Time          `bson:"update_time" json:"updateTime"`
}
