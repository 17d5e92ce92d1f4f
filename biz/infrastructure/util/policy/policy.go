package policy

import (
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/user"

	"github.com/samber/lo"
)

// 角色访问策略, 所有学生数据的读写前都要过这里

// CanRead 判定调用者对目标学生数据的读权限.
// 老师全量放行; 学生仅限本人; 家长仅限已关联的学生; 其余一律拒绝.
func CanRead(caller *user.User, studentID string) bool {
	if caller == nil {
		return false
	}
	switch caller.Role {
	case consts.RoleTeacher:
		return true
	case consts.RoleStudent:
		return caller.ID.Hex() == studentID
	case consts.RoleParent:
		return lo.Contains(caller.LinkedStudents, studentID)
	}
	return false
}

// CanWrite 写操作仅老师放行, 与关联关系无关
func CanWrite(caller *user.User) bool {
	return caller != nil && caller.Role == consts.RoleTeacher
}
