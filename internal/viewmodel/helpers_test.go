package viewmodel

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/empdir/internal/logging"
	"github.com/dmitrijs2005/empdir/internal/models"
	"github.com/dmitrijs2005/empdir/internal/repositories/localstore"
	"github.com/dmitrijs2005/empdir/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(context.Background(), localstore.NewMemoryRepository(), logging.Nop())
	require.NoError(t, err)
	return s
}

func sampleDraft(i int) models.Draft {
	return models.Draft{
		FirstName:        fmt.Sprintf("First%d", i),
		LastName:         fmt.Sprintf("Last%d", i),
		DateOfEmployment: "2020-01-01",
		DateOfBirth:      "1990-01-01",
		Phone:            fmt.Sprintf("555000%04d", i),
		Email:            fmt.Sprintf("user%d@example.com", i),
		Department:       models.DepartmentTech,
		Position:         models.PositionJunior,
	}
}

// fill adds n records and returns them newest first, as the store lists them.
func fill(t *testing.T, s *store.Store, n int) []models.Employee {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := s.Add(context.Background(), sampleDraft(i))
		require.NoError(t, err)
	}
	return s.List()
}
