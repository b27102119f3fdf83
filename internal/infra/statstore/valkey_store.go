package statstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/valkey-io/valkey-go"

	"github.com/sunvolt/solarsite/internal/domain/lead"
)

// ValkeyStore keeps the quote counters in a Valkey-compatible database.
// Locations aggregate under their canonical form in a sorted set; the
// display form is kept in a side key so the landing page shows "Jaipur"
// rather than "jaipur".
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "stats"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) RecordQuote(ctx context.Context, canonical, display string, systemKw float64) error {
	if err := s.client.Do(ctx, s.client.B().Incr().Key(s.quotesKey()).Build()).Error(); err != nil {
		return err
	}
	if err := s.client.Do(ctx, s.client.B().Incrbyfloat().Key(s.kwKey()).Increment(systemKw).Build()).Error(); err != nil {
		return err
	}
	if canonical == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.locationsKey()).Increment(1).Member(canonical).Build()).Error(); err != nil {
		return err
	}
	if display != "" {
		_ = s.client.Do(ctx, s.client.B().Set().Key(s.displayKey(canonical)).Value(display).Nx().Build()).Error()
	}
	return nil
}

func (s *ValkeyStore) Summary(ctx context.Context) (lead.Stats, error) {
	quotes, err := s.getInt(ctx, s.quotesKey())
	if err != nil {
		return lead.Stats{}, err
	}
	kw, err := s.getFloat(ctx, s.kwKey())
	if err != nil {
		return lead.Stats{}, err
	}
	return lead.Stats{TotalQuotes: quotes, TotalKw: kw}, nil
}

func (s *ValkeyStore) TopLocations(ctx context.Context, limit int) ([]lead.LocationCount, error) {
	if limit <= 0 {
		limit = 5
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.locationsKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]lead.LocationCount, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element
			if member, err = tuple[0].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i++
					continue
				}
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i += 2
					continue
				}
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		display := s.fetchDisplay(ctx, member)
		out = append(out, lead.LocationCount{Location: display, Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) fetchDisplay(ctx context.Context, canonical string) string {
	resp := s.client.Do(ctx, s.client.B().Get().Key(s.displayKey(canonical)).Build())
	display, err := resp.ToString()
	if err != nil || display == "" {
		return canonical
	}
	return display
}

func (s *ValkeyStore) getInt(ctx context.Context, key string) (int64, error) {
	raw, err := s.client.Do(ctx, s.client.B().Get().Key(key).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (s *ValkeyStore) getFloat(ctx context.Context, key string) (float64, error) {
	raw, err := s.client.Do(ctx, s.client.B().Get().Key(key).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseFloat(raw, 64)
}

func (s *ValkeyStore) quotesKey() string {
	return fmt.Sprintf("%s:quotes", s.prefix)
}

func (s *ValkeyStore) kwKey() string {
	return fmt.Sprintf("%s:kw", s.prefix)
}

func (s *ValkeyStore) locationsKey() string {
	return fmt.Sprintf("%s:locations", s.prefix)
}

func (s *ValkeyStore) displayKey(canonical string) string {
	return fmt.Sprintf("%s:display:%s", s.prefix, canonical)
}

var _ lead.StatsStore = (*ValkeyStore)(nil)
