package api

import (
	"context"
	"school-hub/biz/adaptor"
	"school-hub/biz/application/dto/school"
	"school-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ListReportCards 查询学生成绩单
func ListReportCards(ctx context.Context, c *app.RequestContext) {
	var req school.ListReportCardsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ReportCardService.ListReportCards(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateReportCard 创建学期成绩单, 仅老师
func CreateReportCard(ctx context.Context, c *app.RequestContext) {
	var req school.CreateReportCardReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ReportCardService.CreateReportCard(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, consts.StatusCreated)
}

// UpdateReportCard 覆盖学期成绩单, 仅老师
func UpdateReportCard(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateReportCardReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ReportCardService.UpdateReportCard(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
