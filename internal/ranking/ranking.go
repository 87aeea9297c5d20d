// Package ranking 加载各行业的地区优先级排名文件。
//
// 目录下每个 .json 文件对应一个行业，文件名（去掉扩展名）即行业名，内容形如
//
//	{"1": ["Almaty", "Astana"], "2": ["Aktobe"]}
package ranking

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"infradash/internal/model"
)

const fileExt = ".json"

// Options 加载选项
type Options struct {
	// SkipInvalid 为 true 时跳过无法解析的文件并记录日志，否则整体失败
	SkipInvalid bool
}

// IndustryFromFile 由文件名推导行业名
func IndustryFromFile(name string) model.Industry {
	base := filepath.Base(name)
	return model.Industry(strings.TrimSuffix(base, filepath.Ext(base)))
}

func isRankingFile(entry os.DirEntry) bool {
	return entry.Type().IsRegular() && strings.EqualFold(filepath.Ext(entry.Name()), fileExt)
}

// LoadDir 扫描目录（不递归），返回 行业 -> 排名记录
func LoadDir(dir string, opts Options) (map[model.Industry][]model.RankingRecord, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("rankings dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("rankings path %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read rankings dir: %w", err)
	}

	out := make(map[model.Industry][]model.RankingRecord)
	for _, entry := range entries {
		if !isRankingFile(entry) {
			continue
		}

		industry := IndustryFromFile(entry.Name())
		records, err := LoadFile(filepath.Join(dir, entry.Name()), industry)
		if err != nil {
			if opts.SkipInvalid {
				log.Printf("跳过排名文件 %s: %v", entry.Name(), err)
				continue
			}
			return nil, err
		}
		out[industry] = append(out[industry], records...)
	}

	return out, nil
}

// LoadFile 读取并解析单个排名文件
func LoadFile(path string, industry model.Industry) ([]model.RankingRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	records, err := Parse(data, industry)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

// Parse 将 {优先级: [地区...]} 展开为排名记录
// 按优先级数值升序展开，同一优先级内保持列表顺序，不去重
func Parse(data []byte, industry model.Industry) ([]model.RankingRecord, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	type level struct {
		priority int
		regions  []string
	}
	levels := make([]level, 0, len(raw))
	for key, regions := range raw {
		p, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("priority key %q is not an integer", key)
		}
		levels = append(levels, level{priority: p, regions: regions})
	}
	sort.SliceStable(levels, func(i, j int) bool { return levels[i].priority < levels[j].priority })

	var records []model.RankingRecord
	for _, lv := range levels {
		for _, region := range lv.regions {
			records = append(records, model.RankingRecord{
				Region:   region,
				Priority: lv.priority,
				Industry: industry,
			})
		}
	}
	return records, nil
}

// Industries 按名称排序的行业列表
func Industries(byIndustry map[model.Industry][]model.RankingRecord) []model.Industry {
	out := make([]model.Industry, 0, len(byIndustry))
	for industry := range byIndustry {
		out = append(out, industry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Flatten 按行业名顺序拼接所有排名记录
func Flatten(byIndustry map[model.Industry][]model.RankingRecord) []model.RankingRecord {
	var out []model.RankingRecord
	for _, industry := range Industries(byIndustry) {
		out = append(out, byIndustry[industry]...)
	}
	return out
}

// Count 记录总数
func Count(byIndustry map[model.Industry][]model.RankingRecord) int {
	n := 0
	for _, records := range byIndustry {
		n += len(records)
	}
	return n
}
