package service

import (
	"school-hub/biz/application/dto/school"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/user"
	"school-hub/biz/infrastructure/util/dateutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attendanceFixture struct {
	svc     *AttendanceService
	store   *fakeAttendanceMapper
	teacher *user.User
	s1      *user.User
	s2      *user.User
	parent  *user.User
}

func newAttendanceFixture() *attendanceFixture {
	s1 := newTestUser(consts.RoleStudent)
	s2 := newTestUser(consts.RoleStudent)
	teacher := newTestUser(consts.RoleTeacher)
	parent := newTestUser(consts.RoleParent, s1.ID.Hex())
	store := newFakeAttendanceMapper()
	return &attendanceFixture{
		svc:     &AttendanceService{UserMapper: newFakeUserMapper(s1, s2, teacher, parent), AttendanceMapper: store},
		store:   store,
		teacher: teacher,
		s1:      s1,
		s2:      s2,
		parent:  parent,
	}
}

func TestCreateAttendanceConflict(t *testing.T) {
	f := newAttendanceFixture()
	ctx := authedCtx(t, f.teacher)

	req := &school.CreateAttendanceReq{StudentId: f.s1.ID.Hex(), Date: "2024-05-01", Status: consts.StatusPresent}
	resp, err := f.svc.CreateAttendance(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, consts.StatusPresent, resp.Status)

	_, err = f.svc.CreateAttendance(ctx, req)
	assert.ErrorIs(t, err, consts.ErrAttendanceExists)
}

func TestCreateAttendanceNormalizesDate(t *testing.T) {
	f := newAttendanceFixture()
	ctx := authedCtx(t, f.teacher)

	resp, err := f.svc.CreateAttendance(ctx, &school.CreateAttendanceReq{
		StudentId: f.s1.ID.Hex(),
		Date:      "2024-05-01T15:30:00+08:00",
		Status:    consts.StatusLate,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), resp.Date)

	// 同一自然日的另一时刻视为重复
	_, err = f.svc.CreateAttendance(ctx, &school.CreateAttendanceReq{
		StudentId: f.s1.ID.Hex(),
		Date:      "2024-05-01T01:00:00Z",
		Status:    consts.StatusPresent,
	})
	assert.ErrorIs(t, err, consts.ErrAttendanceExists)
}

func TestCreateAttendanceInvalidInput(t *testing.T) {
	f := newAttendanceFixture()
	ctx := authedCtx(t, f.teacher)

	_, err := f.svc.CreateAttendance(ctx, &school.CreateAttendanceReq{
		StudentId: f.s1.ID.Hex(), Date: "2024-05-01", Status: "vacation",
	})
	assert.ErrorIs(t, err, consts.ErrInvalidStatus)

	_, err = f.svc.CreateAttendance(ctx, &school.CreateAttendanceReq{
		StudentId: f.s1.ID.Hex(), Date: "yesterday", Status: consts.StatusPresent,
	})
	assert.ErrorIs(t, err, consts.ErrInvalidDate)
}

func TestCreateAttendanceRequiresTeacher(t *testing.T) {
	f := newAttendanceFixture()

	for _, caller := range []*user.User{f.s1, f.parent} {
		_, err := f.svc.CreateAttendance(authedCtx(t, caller), &school.CreateAttendanceReq{
			StudentId: f.s1.ID.Hex(), Date: "2024-05-01", Status: consts.StatusPresent,
		})
		assert.ErrorIs(t, err, consts.ErrForbidden)
	}
	assert.Empty(t, f.store.records)
}

func TestUpdateAttendance(t *testing.T) {
	f := newAttendanceFixture()
	ctx := authedCtx(t, f.teacher)

	_, err := f.svc.CreateAttendance(ctx, &school.CreateAttendanceReq{
		StudentId: f.s1.ID.Hex(), Date: "2024-05-01", Status: consts.StatusPresent,
	})
	require.NoError(t, err)

	resp, err := f.svc.UpdateAttendance(ctx, &school.UpdateAttendanceReq{
		StudentId: f.s1.ID.Hex(), Date: "2024-05-01T23:00:00Z", Status: consts.StatusAbsent,
	})
	require.NoError(t, err)
	assert.Equal(t, consts.StatusAbsent, resp.Status)
	assert.Len(t, f.store.records, 1)
}

func TestUpdateAttendanceNotFound(t *testing.T) {
	f := newAttendanceFixture()
	ctx := authedCtx(t, f.teacher)

	_, err := f.svc.UpdateAttendance(ctx, &school.UpdateAttendanceReq{
		StudentId: f.s1.ID.Hex(), Date: "2024-05-01", Status: consts.StatusAbsent,
	})
	assert.ErrorIs(t, err, consts.ErrAttendanceNotFound)
	// 不做隐式创建
	assert.Empty(t, f.store.records)
}

func TestListAttendanceAccess(t *testing.T) {
	f := newAttendanceFixture()

	// 家长只能看已关联的学生
	_, err := f.svc.ListAttendance(authedCtx(t, f.parent), &school.ListAttendanceReq{StudentId: f.s1.ID.Hex()})
	assert.NoError(t, err)
	_, err = f.svc.ListAttendance(authedCtx(t, f.parent), &school.ListAttendanceReq{StudentId: f.s2.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrForbidden)

	// 学生不能看别人
	_, err = f.svc.ListAttendance(authedCtx(t, f.s1), &school.ListAttendanceReq{StudentId: f.s2.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrForbidden)

	// 老师随便看
	_, err = f.svc.ListAttendance(authedCtx(t, f.teacher), &school.ListAttendanceReq{StudentId: f.s2.ID.Hex()})
	assert.NoError(t, err)

	// 没带token
	_, err = f.svc.ListAttendance(anonymousCtx(), &school.ListAttendanceReq{StudentId: f.s1.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)

	// 带了token但解不开
	_, err = f.svc.ListAttendance(invalidTokenCtx(), &school.ListAttendanceReq{StudentId: f.s1.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrInvalidToken)
}

func TestListAttendanceSorted(t *testing.T) {
	f := newAttendanceFixture()
	ctx := authedCtx(t, f.teacher)

	today := dateutil.NormalizeToMidnightUTC(time.Now())
	for _, d := range []time.Time{today, today.AddDate(0, 0, -2), today.AddDate(0, 0, -1)} {
		_, err := f.svc.CreateAttendance(ctx, &school.CreateAttendanceReq{
			StudentId: f.s1.ID.Hex(), Date: d.Format(time.RFC3339), Status: consts.StatusPresent,
		})
		require.NoError(t, err)
	}

	list, err := f.svc.ListAttendance(authedCtx(t, f.s1), &school.ListAttendanceReq{StudentId: f.s1.ID.Hex()})
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].Date.Before(list[i].Date))
	}
}

func TestListAttendanceLastMonthWindow(t *testing.T) {
	f := newAttendanceFixture()
	ctx := authedCtx(t, f.teacher)

	today := dateutil.NormalizeToMidnightUTC(time.Now())
	firstOfPrevMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	for _, d := range []time.Time{today, firstOfPrevMonth} {
		_, err := f.svc.CreateAttendance(ctx, &school.CreateAttendanceReq{
			StudentId: f.s1.ID.Hex(), Date: d.Format(time.RFC3339), Status: consts.StatusPresent,
		})
		require.NoError(t, err)
	}

	list, err := f.svc.ListAttendance(ctx, &school.ListAttendanceReq{
		StudentId: f.s1.ID.Hex(),
		Period:    dateutil.PeriodLastMonth,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, firstOfPrevMonth, list[0].Date)
}
