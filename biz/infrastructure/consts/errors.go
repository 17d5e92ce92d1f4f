package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 认证与授权
var (
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("No token, authorization denied"))
	ErrInvalidToken      = NewErrno(codes.Unauthenticated, errors.New("Token is not valid"))
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("Access denied"))
)

// 注册与登录
var (
	ErrUserExists         = NewErrno(codes.AlreadyExists, errors.New("User already exists"))
	ErrInvalidCredentials = NewErrno(codes.InvalidArgument, errors.New("Invalid credentials"))
	ErrSignUp             = NewErrno(codes.Internal, errors.New("Failed to register user"))
	ErrSignIn             = NewErrno(codes.Internal, errors.New("Failed to login user"))
)

// 资源唯一性与存在性
var (
	ErrAttendanceExists   = NewErrno(codes.AlreadyExists, errors.New("Attendance already exists for this date"))
	ErrAttendanceNotFound = NewErrno(codes.NotFound, errors.New("Attendance record not found"))
	ErrRecordExists       = NewErrno(codes.AlreadyExists, errors.New("Student record already exists"))
	ErrRecordNotFound     = NewErrno(codes.NotFound, errors.New("Student record not found"))
	ErrReportCardExists   = NewErrno(codes.AlreadyExists, errors.New("Report card for this term already exists"))
	ErrReportCardNotFound = NewErrno(codes.NotFound, errors.New("Report card not found"))
)

// 参数校验
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("Invalid request parameters"))
	ErrInvalidStatus = NewErrno(codes.InvalidArgument, errors.New("Invalid attendance status"))
	ErrInvalidScore  = NewErrno(codes.InvalidArgument, errors.New("Activity score cannot be negative"))
	ErrInvalidDate   = NewErrno(codes.InvalidArgument, errors.New("Invalid date"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("无效的id "))
	ErrUpdate          = NewErrno(codes.Internal, errors.New("更新失败"))
)
