package main

import (
	"context"
	"school-hub/biz/adaptor"
	"school-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/google/uuid"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
)

func main() {
	provider.Init()
	c := provider.Get().Config

	otel.SetTextMapPropagator(b3.New())

	tracer, cfg := hertztracing.NewServerTracer()
	h := server.New(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(cfg))
	h.Use(requestID())
	h.Use(injectContext())

	customizedRegister(h)
	h.Spin()
}

// injectContext 把hertz上下文塞进ctx, 供服务层解jwt身份
func injectContext() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		ctx = adaptor.InjectContext(ctx, c)
		c.Next(ctx)
	}
}

func requestID() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		rid := string(c.GetHeader("X-Request-ID"))
		if rid == "" {
			rid = uuid.New().String()
			c.Request.Header.Set("X-Request-ID", rid)
		}
		c.Header("X-Request-ID", rid)
		c.Next(ctx)
	}
}
