package importer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"infradash/internal/dataset"
	"infradash/internal/geo"
	"infradash/internal/model"
	"infradash/internal/parser"
	"infradash/internal/ranking"
	"infradash/internal/store"
)

// Coordinator 启动加载协调器：依次加载三类输入，并写入加载日志
type Coordinator struct {
	store  *store.Store // 可为 nil，此时不记录日志
	loadID string
}

// NewCoordinator 创建加载协调器
func NewCoordinator(st *store.Store) *Coordinator {
	return &Coordinator{
		store:  st,
		loadID: uuid.New().String(),
	}
}

// LoadID 本次加载的标识
func (c *Coordinator) LoadID() string {
	return c.loadID
}

// Load 同步加载全部输入，任一失败即整体失败
func (c *Coordinator) Load(src dataset.Sources) (*dataset.Dataset, error) {
	startTime := time.Now()

	var wear, spending *model.Table
	err := c.track(store.SourceMetrics, src.MetricsFile, func() (int, error) {
		var err error
		wear, err = parser.LoadMetrics(src.MetricsFile, model.MetricWear, parser.MetricsOptions{Sheet: src.WearSheet})
		if err != nil {
			return 0, fmt.Errorf("load wear metrics: %w", err)
		}
		spending, err = parser.LoadMetrics(src.MetricsFile, model.MetricSpending, parser.MetricsOptions{Sheet: src.SpendingSheet})
		if err != nil {
			return 0, fmt.Errorf("load spending metrics: %w", err)
		}
		return len(wear.Rows) + len(spending.Rows), nil
	})
	if err != nil {
		return nil, err
	}

	var geometries []model.RegionGeometry
	err = c.track(store.SourceGeometry, src.GeoJSONFile, func() (int, error) {
		var err error
		geometries, err = geo.LoadFile(src.GeoJSONFile)
		if err != nil {
			return 0, fmt.Errorf("load geometries: %w", err)
		}
		return len(geometries), nil
	})
	if err != nil {
		return nil, err
	}

	var rankings map[model.Industry][]model.RankingRecord
	err = c.track(store.SourceRankings, src.RankingsDir, func() (int, error) {
		var err error
		rankings, err = ranking.LoadDir(src.RankingsDir, ranking.Options{SkipInvalid: src.SkipInvalid})
		if err != nil {
			return 0, fmt.Errorf("load rankings: %w", err)
		}
		return ranking.Count(rankings), nil
	})
	if err != nil {
		return nil, err
	}

	d := dataset.New(wear, spending, geometries, rankings)
	stats := d.Stats()
	log.Printf("数据加载完成: 地区 %d, 部门 %d, 边界 %d, 行业 %d, 排名记录 %d, 耗时 %s",
		stats.Regions, len(wear.Sectors), stats.Geometries, stats.Industries, stats.RankingRecords,
		time.Since(startTime).Round(time.Millisecond))
	return d, nil
}

// track 执行一次加载并记录日志；日志写入失败只打印，不影响加载
func (c *Coordinator) track(source, path string, fn func() (int, error)) error {
	log.Printf("加载 %s: %s", source, filepath.Base(path))

	var logID int64
	if c.store != nil {
		id, err := c.store.CreateLoadLog(c.loadID, source, path, fileSize(path))
		if err != nil {
			log.Printf("记录加载日志失败: %v", err)
		} else {
			logID = id
		}
	}

	count, err := fn()

	if c.store != nil && logID != 0 {
		status, msg := store.StatusSuccess, ""
		if err != nil {
			status, msg = store.StatusFailed, err.Error()
		}
		if uerr := c.store.CompleteLoadLog(logID, count, status, msg); uerr != nil {
			log.Printf("更新加载日志失败: %v", uerr)
		}
	}
	return err
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0
	}
	return info.Size()
}
