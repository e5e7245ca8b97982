package implementation

import (
	"context"
	"testing"

	"stoic-companion-be/internal/mapper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newDryRunRepo wires the repository to a dialect-only gorm instance so tests
// can assert the generated SQL without a database.
func newDryRunRepo(t *testing.T) (*PassageRepositoryImpl, *string) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	captured := new(string)
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		*captured = tx.Statement.SQL.String()
	})
	require.NoError(t, err)

	return &PassageRepositoryImpl{db: db, mapper: mapper.NewPassageMapper()}, captured
}

func TestFindPendingEmbeddingQueryShape(t *testing.T) {
	r, captured := newDryRunRepo(t)

	_, err := r.FindPendingEmbedding(context.Background(), 50)
	require.NoError(t, err)

	assert.Contains(t, *captured, "embedding IS NULL")
	assert.Contains(t, *captured, "ORDER BY id ASC")
	assert.Contains(t, *captured, "LIMIT ")
}

func TestSearchSimilarBreaksScoreTiesById(t *testing.T) {
	r, captured := newDryRunRepo(t)

	_, err := r.SearchSimilarWithScore(context.Background(), []float32{0.1, 0.2}, 20, 0.35)
	require.NoError(t, err)

	assert.Contains(t, *captured, "embedding IS NOT NULL")
	assert.Contains(t, *captured, "ORDER BY similarity DESC, passages.id ASC")
}
