package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNewSystemLog(t *testing.T) {
	ts := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	record := slog.NewRecord(ts, slog.LevelError, "failed to save vendor report", 0)
	record.AddAttrs(
		slog.String("report_id", "abc"),
		slog.String("error", "connection refused"),
		slog.Float64("latency_ms", 12.6),
		slog.String("public_id", "social_vendor_screenshots/1"),
	)

	entry := newSystemLog(record, []slog.Attr{
		slog.String("report_type", "vendor"),
		slog.String("request_id", "req-1"),
		slog.String("analyst_id", "an-1"),
	})

	assert.Equal(t, ts, entry.Timestamp)
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "vendor", entry.ReportType)
	assert.Equal(t, "abc", entry.ReportID)
	assert.Equal(t, "req-1", entry.TraceID)
	require.NotNil(t, entry.AnalystID)
	assert.Equal(t, "an-1", *entry.AnalystID)
	assert.Equal(t, "connection refused", entry.Error)
	assert.Equal(t, 13, entry.LatencyMs)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, map[string]interface{}{"public_id": "social_vendor_screenshots/1"}, extra)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink down")
}

func TestMultiHandler(t *testing.T) {
	var info, errs bytes.Buffer
	infoH := slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo})
	errH := slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError})

	l := slog.New(NewMultiHandler(infoH, errH).WithAttrs([]slog.Attr{slog.String("report_type", "romance")}))
	l.Info("report submitted")
	l.Error("save failed")

	assert.Equal(t, 2, bytes.Count(info.Bytes(), []byte("\n")))
	assert.Equal(t, 1, bytes.Count(errs.Bytes(), []byte("\n")))
	assert.Contains(t, errs.String(), `"report_type":"romance"`)

	t.Run("failing sink does not block others", func(t *testing.T) {
		var out bytes.Buffer
		h := NewMultiHandler(failingHandler{}, slog.NewJSONHandler(&out, nil))
		err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "x", 0))
		assert.EqualError(t, err, "sink down")
		assert.Contains(t, out.String(), `"msg":"x"`)
	})
}

func TestPGHandler_Enabled(t *testing.T) {
	h := &PGHandler{}
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPurgeBefore(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, DriverName: "postgres"}), &gorm.Config{
		Logger: logger.New(log.New(io.Discard, "", log.LstdFlags), logger.Config{LogLevel: logger.Silent}),
	})
	require.NoError(t, err)

	cutoff := time.Now().AddDate(0, 0, -30)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "system_logs" WHERE timestamp < \$1`).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectCommit()

	deleted, err := purgeBefore(db, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
