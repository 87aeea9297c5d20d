package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Rankings RankingsConfig `toml:"rankings"`
	Map      MapConfig      `toml:"map"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据文件配置
type DataConfig struct {
	DataDir     string `toml:"data_dir"`
	MetricsFile string `toml:"metrics_file"`
	GeoJSONFile string `toml:"geojson_file"`
	RankingsDir string `toml:"rankings_dir"`
	LoadLog     bool   `toml:"load_log"`
}

// MetricsConfig 指标表配置
// WearSheet / SpendingSheet 为空时使用第一个工作表
type MetricsConfig struct {
	WearSheet     string `toml:"wear_sheet"`
	SpendingSheet string `toml:"spending_sheet"`
}

// RankingsConfig 排名目录配置
type RankingsConfig struct {
	SkipInvalid bool `toml:"skip_invalid"`
}

// MapConfig 地图默认视图
type MapConfig struct {
	CenterLat float64 `toml:"center_lat"`
	CenterLon float64 `toml:"center_lon"`
	Zoom      int     `toml:"zoom"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:     "data",
			MetricsFile: "region_excel.xlsx",
			GeoJSONFile: "kazakhstan_regions_simplified.geojson",
			RankingsDir: "clustering_data",
			LoadLog:     true,
		},
		Map: MapConfig{
			CenterLat: 48.0196,
			CenterLon: 66.9237,
			Zoom:      4,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从可执行文件同目录的 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return LoadConfigFrom(filepath.Join(exeDir, "config.toml"))
}

// LoadConfigFrom 从指定路径加载配置；文件不存在时返回默认配置
func LoadConfigFrom(configPath string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnv(config)
	return config, info, nil
}

// applyEnv 环境变量覆盖（用于容器 / 本地运行）
func applyEnv(config *AppConfig) {
	if v := os.Getenv("INFRADASH_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("INFRADASH_METRICS_FILE"); v != "" {
		config.Data.MetricsFile = v
	}
	if v := os.Getenv("INFRADASH_GEOJSON_FILE"); v != "" {
		config.Data.GeoJSONFile = v
	}
	if v := os.Getenv("INFRADASH_RANKINGS_DIR"); v != "" {
		config.Data.RankingsDir = v
	}
	if v := os.Getenv("INFRADASH_SKIP_INVALID_RANKINGS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Rankings.SkipInvalid = b
		}
	}
}

// LoadConfig 从 config.toml 加载配置
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// ResolveDataDir 数据目录的绝对路径；相对路径以可执行文件目录为基准
func ResolveDataDir(config *AppConfig) string {
	if filepath.IsAbs(config.Data.DataDir) {
		return config.Data.DataDir
	}
	exeDir, err := GetExeDir()
	if err != nil || exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir)
}

// GetDataPath 获取数据文件路径；绝对路径原样返回
func GetDataPath(config *AppConfig, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(ResolveDataDir(config), name)
}

// EnsureDataDir 确保数据目录存在
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := ResolveDataDir(config)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}
