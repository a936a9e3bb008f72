package tracestore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/optrl/smdp/types"
)

// RedisStore pushes traces onto per-experiment-run redis lists, so runs
// on different machines can share one sink.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

var _ types.TraceStore = &RedisStore{}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
		ctx: context.Background(),
	}
}

func traceKey(experiment string, run int) string {
	return fmt.Sprintf("traces:%s:%d", experiment, run)
}

func (s *RedisStore) Append(experiment string, run int, trace *types.Trace) error {
	bs, err := json.Marshal(trace)
	if err != nil {
		return err
	}
	return s.client.RPush(s.ctx, traceKey(experiment, run), string(bs)).Err()
}

// Traces reads back all the traces recorded for an experiment run.
func (s *RedisStore) Traces(experiment string, run int) ([]*types.Trace, error) {
	values, err := s.client.LRange(s.ctx, traceKey(experiment, run), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	traces := make([]*types.Trace, 0, len(values))
	for _, value := range values {
		trace := types.NewTrace()
		if err := json.Unmarshal([]byte(value), trace); err != nil {
			return nil, fmt.Errorf("parsing trace: %w", err)
		}
		traces = append(traces, trace)
	}
	return traces, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
