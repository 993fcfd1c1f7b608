package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/plan"
)

// NewMemory returns an in-memory Persistence. Useful for tests and for
// running the UI against throwaway data.
func NewMemory() Persistence {
	return &memory{records: make(map[dateutil.Key][]byte)}
}

type memory struct {
	mu      sync.Mutex
	records map[dateutil.Key][]byte
}

func (m *memory) Day(key dateutil.Key) (*plan.DayRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.records[key]
	if !ok {
		return plan.NewDayRecord(), nil
	}
	r := plan.NewDayRecord()
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return r, nil
}

func (m *memory) Save(key dateutil.Key, r *plan.DayRecord) error {
	if r == nil {
		return errors.New("store: nil record")
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = data
	return nil
}

func (m *memory) Keys(_ context.Context) []dateutil.Key {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]dateutil.Key, 0, len(m.records))
	for k := range m.records {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (m *memory) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[dateutil.Key][]byte)
	return nil
}
