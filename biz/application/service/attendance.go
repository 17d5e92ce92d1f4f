package service

import (
	"context"
	"school-hub/biz/application/dto/school"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/attendance"
	"school-hub/biz/infrastructure/repository/user"
	"school-hub/biz/infrastructure/util/dateutil"
	"school-hub/biz/infrastructure/util/policy"
	"time"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IAttendanceService interface {
	ListAttendance(ctx context.Context, req *school.ListAttendanceReq) ([]*school.AttendanceInfo, error)
	CreateAttendance(ctx context.Context, req *school.CreateAttendanceReq) (*school.AttendanceInfo, error)
	UpdateAttendance(ctx context.Context, req *school.UpdateAttendanceReq) (*school.AttendanceInfo, error)
}

type AttendanceService struct {
	UserMapper       user.Mapper
	AttendanceMapper attendance.Mapper
}

var AttendanceServiceSet = wire.NewSet(
	wire.Struct(new(AttendanceService), "*"),
	wire.Bind(new(IAttendanceService), new(*AttendanceService)),
)

// ListAttendance 查询学生考勤, period限定时间窗口, 按日期升序返回
func (s *AttendanceService) ListAttendance(ctx context.Context, req *school.ListAttendanceReq) ([]*school.AttendanceInfo, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if !policy.CanRead(caller, req.StudentId) {
		return nil, consts.ErrForbidden
	}

	start, end := dateutil.Window(req.Period, time.Now())
	records, err := s.AttendanceMapper.FindByStudentInRange(ctx, req.StudentId, start, end)
	if err != nil {
		return nil, err
	}

	return lo.Map(records, func(a *attendance.Attendance, _ int) *school.AttendanceInfo {
		return toAttendanceInfo(a)
	}), nil
}

// CreateAttendance 录入考勤, 日期截断到UTC自然日, 同日重复录入冲突
func (s *AttendanceService) CreateAttendance(ctx context.Context, req *school.CreateAttendanceReq) (*school.AttendanceInfo, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if !policy.CanWrite(caller) {
		return nil, consts.ErrForbidden
	}

	day, err := normalizedDay(req.Date)
	if err != nil {
		return nil, err
	}
	if !validStatus(req.Status) {
		return nil, consts.ErrInvalidStatus
	}

	a := &attendance.Attendance{
		StudentID: req.StudentId,
		Date:      day,
		Status:    req.Status,
	}
	if err = s.AttendanceMapper.Insert(ctx, a); err != nil {
		return nil, err
	}

	return toAttendanceInfo(a), nil
}

// UpdateAttendance 改写既有考勤的状态, 不存在则报404, 不做隐式创建
func (s *AttendanceService) UpdateAttendance(ctx context.Context, req *school.UpdateAttendanceReq) (*school.AttendanceInfo, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if !policy.CanWrite(caller) {
		return nil, consts.ErrForbidden
	}

	day, err := normalizedDay(req.Date)
	if err != nil {
		return nil, err
	}
	if !validStatus(req.Status) {
		return nil, consts.ErrInvalidStatus
	}

	if err = s.AttendanceMapper.UpdateStatus(ctx, req.StudentId, day, req.Status); err != nil {
		return nil, err
	}

	a, err := s.AttendanceMapper.FindOneByStudentAndDate(ctx, req.StudentId, day)
	if err != nil {
		return nil, err
	}
	return toAttendanceInfo(a), nil
}

func normalizedDay(s string) (time.Time, error) {
	t, err := dateutil.ParseDate(s)
	if err != nil {
		return time.Time{}, consts.ErrInvalidDate
	}
	return dateutil.NormalizeToMidnightUTC(t), nil
}

func validStatus(status string) bool {
	switch status {
	case consts.StatusPresent, consts.StatusAbsent, consts.StatusLate:
		return true
	}
	return false
}

func toAttendanceInfo(a *attendance.Attendance) *school.AttendanceInfo {
	return &school.AttendanceInfo{
		Id:      a.ID.Hex(),
		Student: a.StudentID,
		Date:    a.Date,
		Status:  a.Status,
	}
}
