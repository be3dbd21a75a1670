package audit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// LogSink writes records to a zerolog logger.
type LogSink struct {
	Logger zerolog.Logger
}

func (s LogSink) Write(_ context.Context, rec Record) error {
	s.Logger.Info().
		Str("record_id", rec.ID).
		Str("url", rec.URL).
		Int("upstream_status", rec.UpstreamStatus).
		Bool("recipe_found", rec.Found).
		Time("at", rec.At).
		Msg("recipe extraction")
	return nil
}

// streamMaxLen caps the audit stream; trimming is approximate.
const streamMaxLen = 10000

// RedisSink appends records to a Redis stream.
type RedisSink struct {
	client *redis.Client
	stream string
}

// NewRedisSink creates a sink writing to stream.
func NewRedisSink(client *redis.Client, stream string) *RedisSink {
	return &RedisSink{client: client, stream: stream}
}

func (s *RedisSink) Write(ctx context.Context, rec Record) error {
	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]any{
			"id":              rec.ID,
			"url":             rec.URL,
			"upstream_status": strconv.Itoa(rec.UpstreamStatus),
			"found":           strconv.FormatBool(rec.Found),
			"at":              rec.At.Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return nil
}
