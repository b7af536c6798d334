package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmoney/ledgerlens/internal/model"
)

func testStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSaveLead_RoundTrip(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	card := model.NewScorecard()
	card.Set("Revenue", "£8,000")
	card.Set("Net Margin", "20%")

	id, err := s.SaveLead(ctx, Lead{
		Name:     "Sarah",
		Email:    "sarah@example.com",
		Industry: "service",
	}, card)
	require.NoError(t, err)
	assert.Positive(t, id)

	leads, err := s.ListLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	got := leads[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Sarah", got.Name)
	assert.Equal(t, "sarah@example.com", got.Email)
	assert.Equal(t, "service", got.Industry)
	assert.Equal(t, "£8,000", got.Scorecard["Revenue"])
	assert.Equal(t, "20%", got.Scorecard["Net Margin"])
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSaveLead_RequiresEmail(t *testing.T) {
	s := testStorage(t)

	_, err := s.SaveLead(context.Background(), Lead{Name: "No Email"}, nil)

	assert.Error(t, err)
}

func TestSaveLead_NilScorecard(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	_, err := s.SaveLead(ctx, Lead{Email: "a@example.com"}, nil)
	require.NoError(t, err)

	leads, err := s.ListLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Empty(t, leads[0].Scorecard)
}

func TestListLeads_NewestFirst(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	for _, email := range []string{"first@example.com", "second@example.com", "third@example.com"} {
		_, err := s.SaveLead(ctx, Lead{Email: email}, nil)
		require.NoError(t, err)
	}

	leads, err := s.ListLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 3)
	assert.Equal(t, "third@example.com", leads[0].Email)
	assert.Equal(t, "first@example.com", leads[2].Email)
}

func TestListLeads_Empty(t *testing.T) {
	s := testStorage(t)

	leads, err := s.ListLeads(context.Background())

	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}
