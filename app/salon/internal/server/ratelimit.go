package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/middleware"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/fortune_salon/app/salon/internal/conf"
)

// ErrRateLimited 超出星盘计算频率限制
var ErrRateLimited = errors.New(429, "RATE_LIMITED", "too many chart requests, please retry later")

// NewLimiter 未配置或 qps<=0 时不限流
func NewLimiter(c *conf.Chart) *rate.Limiter {
	if c == nil || c.RateLimit == nil || c.RateLimit.Qps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := int(c.RateLimit.Burst)
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(c.RateLimit.Qps), burst)
}

// RateLimit 令牌不足时直接拒绝，不排队等待
func RateLimit(l *rate.Limiter) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			if !l.Allow() {
				return nil, ErrRateLimited
			}
			return handler(ctx, req)
		}
	}
}
