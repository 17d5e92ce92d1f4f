package consts

// 数据库相关
const (
	ID         = "_id"
	StudentID  = "student_id"
	Email      = "email"
	Date       = "date"
	Term       = "term"
	CreateTime = "create_time"
	UpdateTime = "update_time"
)

// 角色
const (
	RoleStudent = "student"
	RoleParent  = "parent"
	RoleTeacher = "teacher"
)

// 考勤状态
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// 默认值
const (
	MinPasswordLen = 6
	BearerPrefix   = "Bearer "
)
