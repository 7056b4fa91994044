package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/fortune_salon/app/salon/internal/data"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/service"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/usecase"
)

// ProviderSet 是星盘服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Data providers
	data.NewData,
	data.NewChartRepo,

	// UseCase providers
	usecase.NewChartUseCase,

	// Service providers
	service.NewChartService,
)
