package server

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/middleware/selector"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/fortune_salon/app/salon/internal/conf"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/service"
)

const (
	OperationCreateChart    = "/salon.v1.Chart/CreateChart"
	OperationListCharts     = "/salon.v1.Chart/ListCharts"
	OperationGetChart       = "/salon.v1.Chart/GetChart"
	OperationGetChartSVG    = "/salon.v1.Chart/GetChartSVG"
	OperationGetChartPrompt = "/salon.v1.Chart/GetChartPrompt"
	OperationDeleteChart    = "/salon.v1.Chart/DeleteChart"
)

func NewHTTPServer(c *conf.Server, cc *conf.Chart, s *service.ChartService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
			// 只限制计算接口
			selector.Server(RateLimit(NewLimiter(cc))).Path(OperationCreateChart).Build(),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			}
		}
	}

	srv := http.NewServer(opts...)
	registerChartRoutes(srv, s)
	return srv
}

func registerChartRoutes(srv *http.Server, s *service.ChartService) {
	r := srv.Route("/")
	r.POST("/v1/charts", createChartHandler(s))
	r.GET("/v1/charts", listChartsHandler(s))
	r.GET("/v1/charts/{id}", getChartHandler(s))
	r.GET("/v1/charts/{id}/svg", getChartSVGHandler(s))
	r.GET("/v1/charts/{id}/prompt", getChartPromptHandler(s))
	r.DELETE("/v1/charts/{id}", deleteChartHandler(s))
}

func createChartHandler(s *service.ChartService) http.HandlerFunc {
	return func(ctx http.Context) error {
		var in service.CreateChartRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCreateChart)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.CreateChart(ctx, req.(*service.CreateChartRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*service.ChartReply))
	}
}

func listChartsHandler(s *service.ChartService) http.HandlerFunc {
	return func(ctx http.Context) error {
		var in service.ListChartsRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationListCharts)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.ListCharts(ctx, req.(*service.ListChartsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*service.ListChartsReply))
	}
}

func getChartHandler(s *service.ChartService) http.HandlerFunc {
	return func(ctx http.Context) error {
		var in service.GetChartRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationGetChart)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.GetChart(ctx, req.(*service.GetChartRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*service.ChartReply))
	}
}

func getChartSVGHandler(s *service.ChartService) http.HandlerFunc {
	return func(ctx http.Context) error {
		var in service.GetChartRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationGetChartSVG)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.GetChartSVG(ctx, req.(*service.GetChartRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Blob(200, "image/svg+xml", []byte(out.(string)))
	}
}

func getChartPromptHandler(s *service.ChartService) http.HandlerFunc {
	return func(ctx http.Context) error {
		var in service.GetChartPromptRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationGetChartPrompt)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.GetChartPrompt(ctx, req.(*service.GetChartPromptRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*service.ChartPromptReply))
	}
}

func deleteChartHandler(s *service.ChartService) http.HandlerFunc {
	return func(ctx http.Context) error {
		var in service.GetChartRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationDeleteChart)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.DeleteChart(ctx, req.(*service.GetChartRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*service.DeleteChartReply))
	}
}
