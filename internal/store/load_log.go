package store

import (
	"database/sql"
	"fmt"
	"time"
)

// 数据源
const (
	SourceMetrics  = "metrics"
	SourceGeometry = "geometry"
	SourceRankings = "rankings"
)

// 加载状态
const (
	StatusProcessing = "processing"
	StatusSuccess    = "success"
	StatusFailed     = "failed"
)

// LoadLog 一次数据源加载记录
type LoadLog struct {
	ID           int64      `json:"id"`
	LoadID       string     `json:"loadId"`
	Source       string     `json:"source"`
	Path         string     `json:"path"`
	FileSize     int64      `json:"fileSize"`
	RecordCount  int        `json:"recordCount"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// CreateLoadLog 创建加载日志，返回日志 id
func (s *Store) CreateLoadLog(loadID, source, path string, fileSize int64) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO load_logs (load_id, source, path, file_size, status)
		VALUES (?, ?, ?, ?, ?)
	`, loadID, source, path, fileSize, StatusProcessing)
	if err != nil {
		return 0, fmt.Errorf("failed to create load log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get load log id: %w", err)
	}
	return id, nil
}

// CompleteLoadLog 完成加载日志
func (s *Store) CompleteLoadLog(id int64, recordCount int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE load_logs SET
			record_count = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, recordCount, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update load log: %w", err)
	}
	return nil
}

// LatestLoadLogs 每个数据源最近一次的加载记录
func (s *Store) LatestLoadLogs() ([]LoadLog, error) {
	rows, err := s.db.Query(`
		SELECT id, load_id, source, path, file_size, record_count, status, error_message, started_at, completed_at
		FROM load_logs
		WHERE id IN (SELECT MAX(id) FROM load_logs GROUP BY source)
		ORDER BY source
	`)
	if err != nil {
		return nil, fmt.Errorf("query load logs failed: %w", err)
	}
	defer rows.Close()

	var out []LoadLog
	for rows.Next() {
		var (
			it        LoadLog
			completed sql.NullTime
		)
		if err := rows.Scan(&it.ID, &it.LoadID, &it.Source, &it.Path, &it.FileSize, &it.RecordCount,
			&it.Status, &it.ErrorMessage, &it.StartedAt, &completed); err != nil {
			return nil, fmt.Errorf("scan load log failed: %w", err)
		}
		if completed.Valid {
			t := completed.Time
			it.CompletedAt = &t
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate load logs failed: %w", err)
	}
	return out, nil
}

// CountLoadLogs 某次启动写入的加载记录数
func (s *Store) CountLoadLogs(loadID string) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM load_logs WHERE load_id = ?`, loadID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count load logs failed: %w", err)
	}
	return n, nil
}
