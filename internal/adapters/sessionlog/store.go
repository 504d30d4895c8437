package sessionlog

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

const (
	logDirMode  = 0o700
	logFileMode = 0o600
	FileName    = "sessions.jsonl"

	maxLineBytes = 64 * 1024
)

// Timestamps written without a zone offset are read as local time.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Store is an append-only JSON lines log of finished sessions.
type Store struct {
	path   string
	logger *zap.Logger
	mu     sync.RWMutex
}

var _ ports.SessionLog = (*Store)(nil)

type recordSchema struct {
	Timestamp       string `json:"timestamp"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Completed       bool   `json:"completed"`
}

func NewStore(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: filepath.Join(filepath.Clean(dir), FileName), logger: logger}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Append(ctx context.Context, record domain.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := json.Marshal(recordSchema{
		Timestamp:       record.Timestamp.Format(time.RFC3339Nano),
		Type:            string(record.Type),
		DurationMinutes: record.DurationMinutes,
		Completed:       record.Completed,
	})
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), logDirMode); err != nil {
		return fmt.Errorf("create session log directory: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}

	if _, err := file.Write(line); err != nil {
		_ = file.Close()
		return fmt.Errorf("append session record: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close session log: %w", err)
	}

	return nil
}

// List returns every readable record in file order. Lines that fail to decode
// are skipped.
func (s *Store) List(ctx context.Context) ([]domain.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open session log: %w", err)
	}
	defer file.Close()

	var records []domain.SessionRecord
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		record, err := decodeRecord(raw)
		if err != nil {
			s.logger.Debug("skipping session log line", zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read session log: %w", err)
	}

	return records, nil
}

func decodeRecord(raw string) (domain.SessionRecord, error) {
	var entry recordSchema
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.SessionRecord{}, err
	}

	kind, err := domain.ParseSessionKind(entry.Type)
	if err != nil {
		return domain.SessionRecord{}, err
	}

	timestamp, err := parseTimestamp(entry.Timestamp)
	if err != nil {
		return domain.SessionRecord{}, err
	}

	return domain.SessionRecord{
		Timestamp:       timestamp,
		Type:            kind,
		DurationMinutes: entry.DurationMinutes,
		Completed:       entry.Completed,
	}, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return parsed, nil
	}
	for _, layout := range naiveLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}
