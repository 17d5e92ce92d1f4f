package service

import (
	"context"
	"school-hub/biz/adaptor"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/user"
)

// resolveCaller 解出并加载调用者账号. 没带凭证和凭证非法分开报错,
// 账号已不存在的残留token视为未认证
func resolveCaller(ctx context.Context, m user.Mapper) (*user.User, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		if adaptor.HasAuthorization(ctx) {
			return nil, consts.ErrInvalidToken
		}
		return nil, consts.ErrNotAuthentication
	}
	u, err := m.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotAuthentication
	}
	return u, nil
}
