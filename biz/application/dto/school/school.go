package school

import "time"

// 注册与登录

type RegisterReq struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Role           string   `json:"role"`
	LinkedStudents []string `json:"linkedStudents"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResp struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// 考勤

type ListAttendanceReq struct {
	StudentId string `path:"studentId"`
	Period    string `query:"period"`
}

type CreateAttendanceReq struct {
	StudentId string `path:"studentId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

type UpdateAttendanceReq struct {
	StudentId string `path:"studentId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

type AttendanceInfo struct {
	Id      string    `json:"id"`
	Student string    `json:"student"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

// 学生活动档案

type GetRecordReq struct {
	StudentId string `path:"studentId"`
}

type CreateRecordReq struct {
	StudentId string `path:"studentId"`
}

type ActivityInfo struct {
	Date    time.Time `json:"date"`
	Name    string    `json:"name"`
	Score   float64   `json:"score"`
	Remarks string    `json:"remarks"`
}

type UpdateRecordReq struct {
	StudentId  string         `path:"studentId"`
	Activities []ActivityInfo `json:"activities"`
}

type RecordInfo struct {
	Id         string         `json:"id"`
	Student    string         `json:"student"`
	Activities []ActivityInfo `json:"activities"`
}

// 成绩单

type ListReportCardsReq struct {
	StudentId string `path:"studentId"`
}

type GradeInfo struct {
	Subject string `json:"subject"`
	Grade   string `json:"grade"`
}

type CreateReportCardReq struct {
	StudentId string      `path:"studentId"`
	Term      string      `json:"term"`
	Grades    []GradeInfo `json:"grades"`
	Comments  string      `json:"comments"`
}

type UpdateReportCardReq struct {
	StudentId string      `path:"studentId"`
	Term      string      `json:"term"`
	Grades    []GradeInfo `json:"grades"`
	Comments  string      `json:"comments"`
}

type ReportCardInfo struct {
	Id        string      `json:"id"`
	Student   string      `json:"student"`
	Term      string      `json:"term"`
	Grades    []GradeInfo `json:"grades"`
	Comments  string      `json:"comments"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
