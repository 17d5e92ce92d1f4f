package adaptor

import (
	"context"
	"net/http"
	"school-hub/biz/infrastructure/util"
	"school-hub/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess 统一出口: 记录请求响应日志, 将业务错误映射为HTTP状态码.
// 错误响应体固定为 {message: string}. successCode 缺省为200.
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error, successCode ...int) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)

	if err != nil {
		s, _ := status.FromError(err)
		c.JSON(httpStatus(s.Code()), map[string]string{"message": s.Message()})
		return
	}

	code := http.StatusOK
	if len(successCode) > 0 {
		code = successCode[0]
	}
	c.JSON(code, resp)
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.InvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
