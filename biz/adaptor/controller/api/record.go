package api

import (
	"context"
	"school-hub/biz/adaptor"
	"school-hub/biz/application/dto/school"
	"school-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// GetRecord 读取学生活动档案, 首次读取自动建档
func GetRecord(ctx context.Context, c *app.RequestContext) {
	var req school.GetRecordReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.RecordService.GetRecord(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateRecord 显式建档, 仅老师
func CreateRecord(ctx context.Context, c *app.RequestContext) {
	var req school.CreateRecordReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.RecordService.CreateRecord(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, consts.StatusCreated)
}

// UpdateRecord 整体替换活动序列, 仅老师
func UpdateRecord(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateRecordReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.RecordService.UpdateRecord(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
