package api

import (
	"context"
	"school-hub/biz/adaptor"
	"school-hub/biz/application/dto/school"
	"school-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Register 注册账号并返回token
func Register(ctx context.Context, c *app.RequestContext) {
	var req school.RegisterReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AuthService.Register(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// Login 登录并返回token
func Login(ctx context.Context, c *app.RequestContext) {
	var req school.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AuthService.Login(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
