package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/plan"
)

// Persistence is the durable key-value contract for day records: one
// JSON blob per date key, replaced wholesale on every write.
type Persistence interface {
	// Day returns the record for the key, or a fresh empty record when
	// none was ever stored. Never nil.
	Day(key dateutil.Key) (*plan.DayRecord, error)
	// Save replaces the stored record for the key.
	Save(key dateutil.Key, r *plan.DayRecord) error
	// Keys lists every date with a stored record, ascending.
	Keys(ctx context.Context) []dateutil.Key
	// ClearAll wipes every stored record.
	ClearAll() error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Day(key dateutil.Key) (*plan.DayRecord, error) {
	val, err := p.d.Read(string(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return plan.NewDayRecord(), nil
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	r := plan.NewDayRecord()
	if err := json.Unmarshal(val, r); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return r, nil
}

func (p *persistence) Save(key dateutil.Key, r *plan.DayRecord) error {
	if r == nil {
		return errors.New("store: nil record")
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(string(key), data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Keys(ctx context.Context) []dateutil.Key {
	keys := make([]dateutil.Key, 0)
	for key := range p.d.Keys(ctx.Done()) {
		k, err := dateutil.Parse(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (p *persistence) ClearAll() error {
	if err := p.d.EraseAll(); err != nil {
		return fmt.Errorf("store: clear: %w", err)
	}
	return nil
}

// keyToPathTransform shards "2026-08-29" into 2026/08/29 on disk.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
