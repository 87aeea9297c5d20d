package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"infradash/internal/config"
	"infradash/internal/dataset"
	"infradash/internal/importer"
	"infradash/internal/server"
	"infradash/internal/store"
	"infradash/internal/util"
)

var (
	port        = flag.Int("port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	devMode     = flag.Bool("dev", false, "开发模式")
	dataDir     = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	metricsFile = flag.String("metrics", "", "指标表 xlsx/csv")
	geojsonFile = flag.String("geojson", "", "地区边界 GeoJSON")
	rankingsDir = flag.String("rankings", "", "行业排名 JSON 目录")
	noBrowser   = flag.Bool("no-browser", false, "不自动打开浏览器")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  infradash - 地区基础设施磨损与支出看板")
	fmt.Println("==========================================")

	// 加载配置
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *metricsFile != "" {
		cfg.Data.MetricsFile = *metricsFile
	}
	if *geojsonFile != "" {
		cfg.Data.GeoJSONFile = *geojsonFile
	}
	if *rankingsDir != "" {
		cfg.Data.RankingsDir = *rankingsDir
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("创建数据目录失败: %v", err)
	} else {
		fmt.Printf("数据目录: %s\n", dir)
	}

	// 加载日志库可选，打开失败不影响看板
	var st *store.Store
	if cfg.Data.LoadLog {
		st, err = store.New(filepath.Join(config.ResolveDataDir(cfg), "infradash.db"))
		if err != nil {
			log.Printf("打开加载日志库失败，跳过记录: %v", err)
			st = nil
		} else {
			defer st.Close()
		}
	}

	sources := dataset.Sources{
		MetricsFile:   config.GetDataPath(cfg, cfg.Data.MetricsFile),
		WearSheet:     cfg.Metrics.WearSheet,
		SpendingSheet: cfg.Metrics.SpendingSheet,
		GeoJSONFile:   config.GetDataPath(cfg, cfg.Data.GeoJSONFile),
		RankingsDir:   config.GetDataPath(cfg, cfg.Data.RankingsDir),
		SkipInvalid:   cfg.Rankings.SkipInvalid,
	}

	// 启动前同步加载全部数据，失败直接退出
	coord := importer.NewCoordinator(st)
	data, err := coord.Load(sources)
	if err != nil {
		if st != nil {
			_ = st.Close()
		}
		log.Fatalf("数据加载失败: %v", err)
	}

	srv := server.NewServer(cfg, data, server.Options{
		Store:   st,
		Sources: sources,
		LoadID:  coord.LoadID(),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	if !cfg.Server.DevMode && !*noBrowser {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("关闭服务失败: %v", err)
	}
}
