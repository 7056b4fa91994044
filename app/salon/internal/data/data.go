package data

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/storage"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/conf"
)

type Data struct {
	// 未配置数据库时为 nil
	store *storage.Storage
}

func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)
	if c == nil || c.Database == nil || c.Database.Source == "" {
		helper.Warn("database source not configured, charts are kept in memory")
		return &Data{}, func() {}, nil
	}
	if c.Database.Driver != "" && c.Database.Driver != "postgres" {
		return nil, nil, fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	store, err := storage.NewStorage(c.Database.Source)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		helper.Info("closing the data resources")
		store.Close()
	}
	return &Data{store: store}, cleanup, nil
}
