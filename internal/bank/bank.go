// Package bank manages the interview question bank: the embedded default set
// plus optional user-provided banks, with seeded sampling per role.
package bank

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"
)

//go:embed questions.json
var defaultBank embed.FS

// Bank maps a role name to its question pool. Pools keep file order; sampling
// order is controlled by the random source, not the pool.
type Bank struct {
	questions map[string][]string
}

// Load returns the question bank at path, or the embedded default bank when
// path is empty. A user bank replaces the default wholesale rather than
// merging, so a custom bank fully controls its roles.
func Load(path string) (*Bank, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = defaultBank.ReadFile("questions.json")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}

	var questions map[string][]string
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	for role, pool := range questions {
		if len(pool) == 0 {
			return nil, fmt.Errorf("role %q has no questions", role)
		}
	}
	return &Bank{questions: questions}, nil
}

// Roles returns all role names in sorted order.
func (b *Bank) Roles() []string {
	roles := make([]string, 0, len(b.questions))
	for role := range b.questions {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// Questions returns the full pool for a role, in bank order.
func (b *Bank) Questions(role string) ([]string, error) {
	pool, ok := b.questions[role]
	if !ok {
		return nil, fmt.Errorf("unknown role %q (valid: %v)", role, b.Roles())
	}
	out := make([]string, len(pool))
	copy(out, pool)
	return out, nil
}

// Sample draws count questions for a role without replacement. With seeded
// set, the draw is reproducible; otherwise it varies per call. When the pool
// holds fewer than count questions the whole pool is returned, shuffled.
func (b *Bank) Sample(role string, count int, seed int64, seeded bool) ([]string, error) {
	pool, err := b.Questions(role)
	if err != nil {
		return nil, err
	}

	src := rand.NewSource(time.Now().UnixNano())
	if seeded {
		src = rand.NewSource(seed)
	}
	rng := rand.New(src)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count < 0 {
		count = 0
	}
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count], nil
}
