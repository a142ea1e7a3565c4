package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/alexanderramin/logbook/internal/config"
	"github.com/alexanderramin/logbook/internal/domain"
	"github.com/redis/go-redis/v9"
)

// exportIndexKey is the sorted set of export IDs scored by creation time.
const exportIndexKey = "exports"

// OpenRedis connects to the configured Redis server and verifies the
// connection.
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	dialTimeout := 5 * time.Second
	if cfg.DialTimeout != "" {
		d, err := time.ParseDuration(cfg.DialTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid dial_timeout: %w", err)
		}
		dialTimeout = d
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// RedisKVStore implements KVStore with plain Redis strings under a key
// prefix.
type RedisKVStore struct {
	client *redis.Client
	prefix string
}

// NewRedisKVStore creates a store using prefix for every key.
func NewRedisKVStore(client *redis.Client, prefix string) *RedisKVStore {
	return &RedisKVStore{client: client, prefix: prefix}
}

func (s *RedisKVStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisKVStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading key %q: %w", key, err)
	}
	return v, nil
}

func (s *RedisKVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

func (s *RedisKVStore) SetMany(ctx context.Context, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range keys {
			pipe.Set(ctx, s.key(k), values[k], 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("writing %d keys: %w", len(values), err)
	}
	return nil
}

func (s *RedisKVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// RedisExportRepo keeps export records as hashes indexed by a sorted set.
type RedisExportRepo struct {
	client *redis.Client
	prefix string
}

// NewRedisExportRepo creates a new RedisExportRepo.
func NewRedisExportRepo(client *redis.Client, prefix string) *RedisExportRepo {
	return &RedisExportRepo{client: client, prefix: prefix}
}

func (r *RedisExportRepo) recordKey(id string) string {
	return r.prefix + "export:" + id
}

func (r *RedisExportRepo) Create(ctx context.Context, e *domain.ExportRecord) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.recordKey(e.ID), map[string]any{
			"filename":   e.Filename,
			"format":     string(e.Format),
			"bytes":      e.Bytes,
			"created_at": formatStoredTime(e.CreatedAt),
		})
		pipe.ZAdd(ctx, r.prefix+exportIndexKey, redis.Z{
			Score:  float64(e.CreatedAt.UnixMilli()),
			Member: e.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("inserting export record: %w", err)
	}
	return nil
}

// List returns the newest records first. A limit of zero or less returns
// every record.
func (r *RedisExportRepo) List(ctx context.Context, limit int) ([]*domain.ExportRecord, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	ids, err := r.client.ZRevRange(ctx, r.prefix+exportIndexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}

	out := make([]*domain.ExportRecord, 0, len(ids))
	for _, id := range ids {
		fields, err := r.client.HGetAll(ctx, r.recordKey(id)).Result()
		if err != nil {
			return nil, fmt.Errorf("reading export %s: %w", id, err)
		}
		if len(fields) == 0 {
			continue
		}
		n, _ := strconv.Atoi(fields["bytes"])
		out = append(out, &domain.ExportRecord{
			ID:        id,
			Filename:  fields["filename"],
			Format:    domain.ReportFormat(fields["format"]),
			Bytes:     n,
			CreatedAt: parseStoredTime(fields["created_at"]),
		})
	}
	return out, nil
}
