package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/config"
	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/logger"
	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/model"
	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/storage"
)

var flagconf string

func init() {
	flag.StringVar(&flagconf, "conf", "app/horoscope/configs/chartgen.yaml", "config path, eg: -conf chartgen.yaml")
}

// chartStore 生成结果的落库接口
type chartStore interface {
	SaveChart(ctx context.Context, rec *model.ChartRecord) error
}

// result 单个 profile 的计算结果
type result struct {
	Profile config.Profile
	Record  *model.ChartRecord
	File    string
}

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadConfig(flagconf)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}

	// 2. 初始化日志
	if err = logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	logger.Log.Infof("启动星盘生成，共 %d 份出生资料", len(cfg.Profiles))

	ctx := context.Background()

	// 3. 如果配置了数据库信息，则尝试连接
	var store chartStore
	if cfg.DB.Host != "" {
		s, err := storage.NewStorage(cfg.DB.DSN())
		if err != nil {
			logger.Log.Errorf("无法连接数据库: %v. 将仅生成 SVG 文件。", err)
		} else {
			store = s
			defer s.Close()
			logger.Log.Info("已成功连接到数据库")
		}
	} else {
		logger.Log.Info("未配置数据库信息，跳过数据库连接")
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		logger.Log.Fatalf("无法创建输出目录: %v", err)
	}

	results := generateAll(ctx, cfg, chart.NewCalculator(), store)
	if len(results) == 0 {
		logger.Log.Fatal("没有生成任何星盘")
	}

	if cfg.Output.Gallery {
		path := filepath.Join(cfg.Output.Dir, "index.html")
		if err := writeGallery(path, results); err != nil {
			logger.Log.Errorf("生成汇总页失败: %v", err)
		} else {
			logger.Log.Infof("汇总页已生成: %s", path)
		}
	}

	logger.Log.Infof("完成: %d/%d 份星盘", len(results), len(cfg.Profiles))
}

// generateAll 用固定数量的 worker 计算全部星盘，单个失败只记录日志
func generateAll(ctx context.Context, cfg *config.Config, calc *chart.Calculator, store chartStore) []result {
	jobs := make(chan config.Profile)
	var (
		results []result
		mu      sync.Mutex
		wg      sync.WaitGroup
	)

	for i := 0; i < cfg.Concurrency.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				res, err := generateOne(ctx, cfg.Output.Dir, calc, store, p)
				if err != nil {
					logger.Log.Errorf("生成星盘失败 [%s]: %v", p.Name, err)
					continue
				}
				logger.Log.Infof("星盘 [%s] 处理完成 (相位: %d)", p.Name, len(res.Record.Chart.Aspects))

				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}

	for _, p := range cfg.Profiles {
		jobs <- p
	}
	close(jobs)
	wg.Wait()

	// 保持与配置一致的顺序
	order := make(map[string]int, len(cfg.Profiles))
	for i, p := range cfg.Profiles {
		order[p.Name] = i
	}
	sort.Slice(results, func(i, j int) bool {
		return order[results[i].Profile.Name] < order[results[j].Profile.Name]
	})
	return results
}

func generateOne(ctx context.Context, dir string, calc *chart.Calculator, store chartStore, p config.Profile) (result, error) {
	c, err := calc.Compute(p.Birth)
	if err != nil {
		return result{}, err
	}

	label := p.Label
	if label == "" {
		label = p.Name
	}
	rec := model.NewChartRecord("", label, c)

	file := filepath.Join(dir, p.Name+".svg")
	if err := os.WriteFile(file, []byte(c.SVG), 0o644); err != nil {
		return result{}, fmt.Errorf("write svg: %w", err)
	}

	if store != nil {
		if err := store.SaveChart(ctx, rec); err != nil {
			logger.Log.Errorf("保存星盘失败 [%s]: %v", p.Name, err)
		} else {
			logger.Log.Debugf("星盘已保存到数据库 [%s] id=%s", p.Name, rec.ID)
		}
	}

	return result{Profile: p, Record: rec, File: file}, nil
}
