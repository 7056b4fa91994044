package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/model"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("chart not found")
	// ErrDuplicate 主键冲突
	ErrDuplicate = errors.New("chart already exists")
)

// PostgreSQL unique_violation
const uniqueViolation = "23505"

type Storage struct {
	db *sql.DB
}

// NewStorage 连接数据库并初始化表结构
func NewStorage(dsn string) (*Storage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.initSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) initSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS charts (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL DEFAULT '',
			label TEXT NOT NULL DEFAULT '',
			birth_year INTEGER NOT NULL,
			birth_month INTEGER NOT NULL,
			birth_day INTEGER NOT NULL,
			birth_hour INTEGER NOT NULL,
			birth_minute INTEGER NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			timezone_offset DOUBLE PRECISION NOT NULL,
			sun_sign TEXT NOT NULL,
			ascendant_sign TEXT NOT NULL,
			aspect_count INTEGER NOT NULL DEFAULT 0,
			result JSONB NOT NULL,
			svg TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_charts_user_created ON charts (user_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS chart_aspects (
			id SERIAL PRIMARY KEY,
			chart_id UUID NOT NULL REFERENCES charts(id) ON DELETE CASCADE,
			body1 TEXT NOT NULL,
			body2 TEXT NOT NULL,
			aspect TEXT NOT NULL,
			orb DOUBLE PRECISION NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

// SaveChart 在一个事务内写入星盘及其相位明细
func (s *Storage) SaveChart(ctx context.Context, rec *model.ChartRecord) error {
	if rec.Chart == nil {
		return fmt.Errorf("save chart %s: nil chart", rec.ID)
	}
	result, err := encodeResult(rec.Chart)
	if err != nil {
		return err
	}
	sum := rec.Summary()
	e := rec.Chart.Event

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO charts (
			id, user_id, label,
			birth_year, birth_month, birth_day, birth_hour, birth_minute,
			latitude, longitude, timezone_offset,
			sun_sign, ascendant_sign, aspect_count,
			result, svg, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		rec.ID, rec.UserID, rec.Label,
		e.Year, e.Month, e.Day, e.Hour, e.Minute,
		e.Latitude, e.Longitude, e.TimezoneOffset,
		sum.SunSign.String(), sum.AscendantSign.String(), sum.AspectCount,
		string(result), rec.Chart.SVG, rec.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			err = fmt.Errorf("%w: %s", ErrDuplicate, rec.ID)
		}
		return rollback(tx, err)
	}

	if len(rec.Chart.Aspects) > 0 {
		stmt, err := tx.PrepareContext(ctx, pq.CopyIn("chart_aspects", "chart_id", "body1", "body2", "aspect", "orb"))
		if err != nil {
			return rollback(tx, err)
		}
		for _, a := range rec.Chart.Aspects {
			if _, err := stmt.ExecContext(ctx, rec.ID, a.Body1.String(), a.Body2.String(), a.Type.String(), a.Orb); err != nil {
				stmt.Close()
				return rollback(tx, err)
			}
		}
		if _, err := stmt.ExecContext(ctx); err != nil {
			stmt.Close()
			return rollback(tx, err)
		}
		if err := stmt.Close(); err != nil {
			return rollback(tx, err)
		}
	}

	return tx.Commit()
}

// GetChart 根据 ID 读取完整星盘
func (s *Storage) GetChart(ctx context.Context, id uuid.UUID) (*model.ChartRecord, error) {
	var (
		rec    model.ChartRecord
		result []byte
		svg    string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, label, result, svg, created_at FROM charts WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.UserID, &rec.Label, &result, &svg, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	c, err := decodeResult(result)
	if err != nil {
		return nil, err
	}
	c.SVG = svg
	rec.Chart = c
	return &rec, nil
}

// ListCharts 分页列出摘要，userID 为空时列出全部，按创建时间倒序
func (s *Storage) ListCharts(ctx context.Context, userID string, page, pageSize int) ([]*model.ChartSummary, int, error) {
	offset := (page - 1) * pageSize

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, label,
			birth_year, birth_month, birth_day, birth_hour, birth_minute,
			latitude, longitude, timezone_offset,
			sun_sign, ascendant_sign, aspect_count, created_at
		FROM charts
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var summaries []*model.ChartSummary
	for rows.Next() {
		var (
			sm           model.ChartSummary
			sunSign, asc string
		)
		e := &sm.Event
		if err := rows.Scan(&sm.ID, &sm.UserID, &sm.Label,
			&e.Year, &e.Month, &e.Day, &e.Hour, &e.Minute,
			&e.Latitude, &e.Longitude, &e.TimezoneOffset,
			&sunSign, &asc, &sm.AspectCount, &sm.CreatedAt); err != nil {
			return nil, 0, err
		}
		if err := sm.SunSign.UnmarshalText([]byte(sunSign)); err != nil {
			return nil, 0, err
		}
		if err := sm.AscendantSign.UnmarshalText([]byte(asc)); err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, &sm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM charts WHERE ($1 = '' OR user_id = $1)`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	return summaries, total, nil
}

// DeleteChart 删除星盘，相位明细级联删除
func (s *Storage) DeleteChart(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM charts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func rollback(tx *sql.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}

// encodeResult SVG 单独存列，不进 JSONB。
// lib/pq 会把 []byte 当作 bytea 发送，写入 JSONB 时需转成 string。
func encodeResult(c *chart.Chart) ([]byte, error) {
	cp := *c
	cp.SVG = ""
	data, err := json.Marshal(&cp)
	if err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return data, nil
}

func decodeResult(data []byte) (*chart.Chart, error) {
	var c chart.Chart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return &c, nil
}
