package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"pricemap/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prev    sql.DBStats
		cur     sql.DBStats
		wantLog string
	}{
		{
			name:    "no new waits",
			prev:    sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:     sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			wantLog: "",
		},
		{
			name:    "short waits stay at debug",
			prev:    sql.DBStats{WaitCount: 1},
			cur:     sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			wantLog: "level=DEBUG",
		},
		{
			name:    "long waits warn",
			prev:    sql.DBStats{WaitCount: 1},
			cur:     sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond},
			wantLog: "level=WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			m := &poolMonitor{
				logger:        slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
				warnThreshold: dbPoolWarnDurationThreshold,
			}

			m.observe(context.Background(), tt.prev, tt.cur)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "wait_count_delta=")
		})
	}
}

func TestSchemaModels_Order(t *testing.T) {
	t.Parallel()

	models := schemaModels()

	assert.IsType(t, &model.ShopModel{}, models[0], "shops must exist before their dependents")
	assert.Len(t, models, 6)
}
