package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadEmbeddedDefault checks the built-in bank ships all four roles.
func TestLoadEmbeddedDefault(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Data Scientist",
		"Product Manager",
		"Software Engineer",
		"UX Designer",
	}, b.Roles())

	for _, role := range b.Roles() {
		pool, err := b.Questions(role)
		require.NoError(t, err)
		assert.NotEmpty(t, pool, "role %q", role)
	}
}

// TestLoadCustomBank checks a user bank replaces the default wholesale.
func TestLoadCustomBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"SRE": ["How do you define an SLO?", "Walk me through an incident you ran."]}`), 0o600))

	b, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"SRE"}, b.Roles())
	_, err = b.Questions("Software Engineer")
	assert.ErrorContains(t, err, `unknown role "Software Engineer"`)
}

// TestLoadErrors covers unreadable, malformed and empty banks.
func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read question bank")

	badJSON := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(badJSON, []byte("{not json"), 0o600))
	_, err = Load(badJSON)
	assert.ErrorContains(t, err, "failed to parse question bank")

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("{}"), 0o600))
	_, err = Load(empty)
	assert.ErrorContains(t, err, "question bank is empty")

	emptyRole := filepath.Join(t.TempDir(), "emptyrole.json")
	require.NoError(t, os.WriteFile(emptyRole, []byte(`{"SRE": []}`), 0o600))
	_, err = Load(emptyRole)
	assert.ErrorContains(t, err, `role "SRE" has no questions`)
}

// TestSampleSeeded checks seeded draws are reproducible and without replacement.
func TestSampleSeeded(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)

	first, err := b.Sample("Software Engineer", 4, 7, true)
	require.NoError(t, err)
	second, err := b.Sample("Software Engineer", 4, 7, true)
	require.NoError(t, err)

	assert.Len(t, first, 4)
	assert.Equal(t, first, second)

	seen := make(map[string]struct{}, len(first))
	for _, q := range first {
		_, dup := seen[q]
		assert.False(t, dup, "duplicate question %q", q)
		seen[q] = struct{}{}
	}
}

// TestSampleCountExceedsPool returns the whole pool when oversubscribed.
func TestSampleCountExceedsPool(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)

	pool, err := b.Questions("Data Scientist")
	require.NoError(t, err)

	sampled, err := b.Sample("Data Scientist", len(pool)+10, 1, true)
	require.NoError(t, err)
	assert.Len(t, sampled, len(pool))
	assert.ElementsMatch(t, pool, sampled)
}

// TestSampleNonPositiveCount clamps instead of slicing out of range.
func TestSampleNonPositiveCount(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)

	sampled, err := b.Sample("Software Engineer", -1, 0, false)
	require.NoError(t, err)
	assert.Empty(t, sampled)

	sampled, err = b.Sample("Software Engineer", 0, 0, false)
	require.NoError(t, err)
	assert.Empty(t, sampled)
}

// TestSampleUnknownRole propagates the role error.
func TestSampleUnknownRole(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)

	_, err = b.Sample("Astronaut", 4, 1, true)
	assert.ErrorContains(t, err, `unknown role "Astronaut"`)
}

// TestQuestionsReturnsCopy verifies callers cannot mutate the bank.
func TestQuestionsReturnsCopy(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)

	pool, err := b.Questions("Software Engineer")
	require.NoError(t, err)
	pool[0] = "mutated"

	again, err := b.Questions("Software Engineer")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0])
}
