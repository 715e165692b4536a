// Package autocom suggests attractions, cities and governorates from a
// typed prefix. Entries are kept as lexically sorted members, in memory or
// in a redis sorted set.
package autocom

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"nilenavigator/catalog"
	"nilenavigator/store"
	"nilenavigator/utils"

	"github.com/redis/go-redis/v9"
)

const (
	KindAttraction  = "attraction"
	KindCity        = "city"
	KindGovernorate = "governorate"
)

type Suggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Index stores suggestions and looks them up by name prefix.
type Index interface {
	Add(ctx context.Context, entries []Suggestion) error
	Search(ctx context.Context, prefix string, limit int) ([]Suggestion, error)
}

// Entries lists everything in the catalog worth suggesting.
func Entries(c *catalog.Catalog) []Suggestion {
	var out []Suggestion
	seenCity := map[string]bool{}
	for _, g := range c.Governorates() {
		out = append(out, Suggestion{ID: utils.Slugify(g.Name), Name: g.Name, Kind: KindGovernorate})
		for _, city := range g.Cities {
			if seenCity[city] {
				continue
			}
			seenCity[city] = true
			out = append(out, Suggestion{ID: utils.Slugify(city), Name: city, Kind: KindCity})
		}
	}
	for _, a := range c.ListAttractions() {
		out = append(out, Suggestion{ID: a.ID, Name: a.Name, Kind: KindAttraction})
	}
	return out
}

// member encodes a suggestion so that lexical order follows the
// lowercased name: "name|kind|id|Display Name".
func member(s Suggestion) string {
	return strings.Join([]string{strings.ToLower(s.Name), s.Kind, s.ID, s.Name}, "|")
}

func parseMember(m string) (Suggestion, bool) {
	parts := strings.SplitN(m, "|", 4)
	if len(parts) != 4 {
		return Suggestion{}, false
	}
	return Suggestion{Kind: parts[1], ID: parts[2], Name: parts[3]}, true
}

func normalize(prefix string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(prefix, "|", "")))
}

// Memory is an in-process Index.
type Memory struct {
	mu      sync.RWMutex
	members []string
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Add(_ context.Context, entries []Suggestion) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]bool, len(m.members))
	for _, s := range m.members {
		seen[s] = true
	}
	for _, e := range entries {
		if k := member(e); !seen[k] {
			seen[k] = true
			m.members = append(m.members, k)
		}
	}
	sort.Strings(m.members)
	return nil
}

func (m *Memory) Search(_ context.Context, prefix string, limit int) ([]Suggestion, error) {
	p := normalize(prefix)
	if p == "" {
		return []Suggestion{}, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []Suggestion{}
	for i := sort.SearchStrings(m.members, p); i < len(m.members) && len(out) < limit; i++ {
		if !strings.HasPrefix(m.members[i], p) {
			break
		}
		if s, ok := parseMember(m.members[i]); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// Redis keeps suggestions in one sorted set with equal scores so that
// ZRANGEBYLEX can answer prefix queries.
type Redis struct {
	client *redis.Client
	key    string
}

func NewRedis(client *redis.Client, keyPrefix string) *Redis {
	return &Redis{client: client, key: keyPrefix + "autocomplete:catalog"}
}

func (r *Redis) Add(ctx context.Context, entries []Suggestion) error {
	if len(entries) == 0 {
		return nil
	}
	zs := make([]redis.Z, 0, len(entries))
	for _, e := range entries {
		zs = append(zs, redis.Z{Score: 0, Member: member(e)})
	}
	if err := r.client.ZAdd(ctx, r.key, zs...).Err(); err != nil {
		return fmt.Errorf("failed to add autocomplete entries: %w", err)
	}
	return nil
}

func (r *Redis) Search(ctx context.Context, prefix string, limit int) ([]Suggestion, error) {
	p := normalize(prefix)
	if p == "" {
		return []Suggestion{}, nil
	}
	results, err := r.client.ZRangeByLex(ctx, r.key, &redis.ZRangeBy{
		Min:   "[" + p,
		Max:   "[" + p + "\xff",
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to search autocomplete: %w", err)
	}
	out := make([]Suggestion, 0, len(results))
	for _, m := range results {
		if s, ok := parseMember(m); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// ForStore loads the catalog into a redis index when kv is redis backed,
// otherwise into memory. A failing redis index falls back to memory.
func ForStore(ctx context.Context, kv store.KV, c *catalog.Catalog) Index {
	entries := Entries(c)
	if r, ok := kv.(*store.Redis); ok {
		idx := NewRedis(r.Client(), r.Prefix())
		err := idx.Add(ctx, entries)
		if err == nil {
			return idx
		}
		log.Printf("autocomplete: %v; using in-memory index", err)
	}
	mem := NewMemory()
	_ = mem.Add(ctx, entries)
	return mem
}
