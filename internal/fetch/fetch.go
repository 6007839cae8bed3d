// Package fetch orchestrates dataset retrieval and processing. A Source
// supplies raw tables (a downloader, a directory of saved files, a test
// stub), the Service runs the dataset processors over them, and a
// SnapshotStore optionally keeps the serialized output of each run.
package fetch

import (
	"context"
	"fmt"

	"ncschooldata/internal/rawtable"
)

// Dataset names accepted by the service.
const (
	DatasetEnrollment = "enrollment"
	DatasetAssessment = "assessment"
	DatasetDirectory  = "directory"
)

// Source supplies raw tables for one dataset and year. Implementations own
// the transport: local files, HTTP, or canned fixtures in tests.
type Source interface {
	// DistrictEnrollment returns the district-level enrollment table for a
	// school year, identified by its end year.
	DistrictEnrollment(ctx context.Context, year int) (*rawtable.Table, error)

	// SchoolEnrollment returns the school-level enrollment table for a year.
	SchoolEnrollment(ctx context.Context, year int) (*rawtable.Table, error)

	// Assessment returns the accountability results table for a year.
	Assessment(ctx context.Context, year int) (*rawtable.Table, error)

	// Directory returns the school-directory tables keyed by category name
	// (for example "public", "charter"). Directories are not year-scoped.
	Directory(ctx context.Context) (map[string]*rawtable.Table, error)
}

// Key identifies one stored snapshot. Year is zero for datasets that are
// not year-scoped.
type Key struct {
	Dataset string
	Year    int
	Format  string
}

// String returns the key in dataset/year/format form for logs.
func (k Key) String() string {
	return fmt.Sprintf("%s/%d/%s", k.Dataset, k.Year, k.Format)
}

// SnapshotStore persists serialized fetch output. Get reports a miss with
// ok=false and a nil error; errors are reserved for storage failures.
// Implementations handle their own locking.
type SnapshotStore interface {
	Get(ctx context.Context, key Key) ([]byte, bool, error)
	Put(ctx context.Context, key Key, data []byte) error
}
