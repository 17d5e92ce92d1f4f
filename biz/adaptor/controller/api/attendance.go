package api

import (
	"context"
	"school-hub/biz/adaptor"
	"school-hub/biz/application/dto/school"
	"school-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ListAttendance 查询学生考勤, period可选
func ListAttendance(ctx context.Context, c *app.RequestContext) {
	var req school.ListAttendanceReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AttendanceService.ListAttendance(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateAttendance 录入考勤, 仅老师
func CreateAttendance(ctx context.Context, c *app.RequestContext) {
	var req school.CreateAttendanceReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AttendanceService.CreateAttendance(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, consts.StatusCreated)
}

// UpdateAttendance 改写考勤状态, 仅老师
func UpdateAttendance(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateAttendanceReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AttendanceService.UpdateAttendance(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
