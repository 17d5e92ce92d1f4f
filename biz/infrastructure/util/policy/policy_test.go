package policy

import (
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUser(role string, linked ...string) *user.User {
	return &user.User{
		ID:             primitive.NewObjectID(),
		Role:           role,
		LinkedStudents: linked,
	}
}

func TestCanReadTeacher(t *testing.T) {
	teacher := newUser(consts.RoleTeacher)
	assert.True(t, CanRead(teacher, primitive.NewObjectID().Hex()))
}

func TestCanReadStudent(t *testing.T) {
	student := newUser(consts.RoleStudent)
	assert.True(t, CanRead(student, student.ID.Hex()))
	assert.False(t, CanRead(student, primitive.NewObjectID().Hex()))
}

func TestCanReadParent(t *testing.T) {
	linked := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()
	parent := newUser(consts.RoleParent, linked)

	assert.True(t, CanRead(parent, linked))
	assert.False(t, CanRead(parent, other))

	// 未关联任何学生的家长
	lonely := newUser(consts.RoleParent)
	assert.False(t, CanRead(lonely, linked))
}

func TestCanReadUnknownRole(t *testing.T) {
	assert.False(t, CanRead(newUser("admin"), primitive.NewObjectID().Hex()))
	assert.False(t, CanRead(nil, primitive.NewObjectID().Hex()))
}

func TestCanWrite(t *testing.T) {
	assert.True(t, CanWrite(newUser(consts.RoleTeacher)))
	assert.False(t, CanWrite(newUser(consts.RoleStudent)))
	// 家长即使已关联也不可写
	assert.False(t, CanWrite(newUser(consts.RoleParent, primitive.NewObjectID().Hex())))
	assert.False(t, CanWrite(nil))
}
