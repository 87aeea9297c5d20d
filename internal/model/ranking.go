package model

// Industry 行业标识，取自排名文件名（去掉扩展名）
type Industry string

// RankingRecord 地区在某行业下的优先级
type RankingRecord struct {
	Region   string   `json:"region"`
	Priority int      `json:"priority"`
	Industry Industry `json:"industry"`
}
