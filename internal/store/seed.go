package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/empdir/internal/models"
)

// DefaultSeedSize is the number of demo records added to an empty directory.
const DefaultSeedSize = 50

var (
	seedFirstNames = []string{
		"Ada", "Grace", "Alan", "Linus", "Margaret", "Edsger", "Donald", "Barbara", "Ken", "Dennis",
		"Guido", "Bjarne", "Brenda", "James", "John", "Leslie", "Tim", "Radia", "Hedy", "Katherine",
	}
	seedLastNames = []string{
		"Lovelace", "Hopper", "Turing", "Torvalds", "Hamilton", "Dijkstra", "Knuth", "Liskov", "Thompson", "Ritchie",
		"vanRossum", "Stroustrup", "Rome", "Gosling", "McCarthy", "Lamport", "Berners-Lee", "Perlman", "Lamarr", "Johnson",
	}
)

// SeedDrafts builds n demo employees. Every field is derived from the index
// so the same n always yields the same data, and every record passes form
// validation.
func SeedDrafts(n int) []models.Draft {
	out := make([]models.Draft, 0, n)
	for i := 0; i < n; i++ {
		fn := seedFirstNames[i%len(seedFirstNames)]
		ln := seedLastNames[(i*3)%len(seedLastNames)]

		dobYear := 1982 + i%20
		dob := fmt.Sprintf("%04d-%02d-%02d", dobYear, i%12+1, (i*7)%28+1)

		doeYear := max(2015+i%10, dobYear+18)
		doe := fmt.Sprintf("%04d-%02d-%02d", doeYear, (i*5)%12+1, (i*11)%28+1)

		out = append(out, models.Draft{
			FirstName:        fn,
			LastName:         ln,
			DateOfEmployment: doe,
			DateOfBirth:      dob,
			Phone:            fmt.Sprintf("%010d", 5000000000+i),
			Email:            fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(fn), strings.ToLower(ln), i),
			Department:       models.Departments[i%len(models.Departments)],
			Position:         models.Positions[i%len(models.Positions)],
		})
	}
	return out
}

// Seed fills an empty directory with n demo employees and returns how many
// were added. A non-empty directory is left alone.
func (s *Store) Seed(ctx context.Context, n int) (int, error) {
	if n <= 0 || s.Len() > 0 {
		return 0, nil
	}

	drafts := SeedDrafts(n)
	// The last generated record is the newest, as if added one by one.
	slices.Reverse(drafts)

	recs, err := s.AddMany(ctx, drafts)
	return len(recs), err
}
