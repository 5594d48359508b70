package index

// SutraIndex defines the interface for sutra index operations.
// Consumers should depend on this interface rather than the concrete
// *DB type to facilitate testing with mocks.
type SutraIndex interface {
	UpsertSutra(r SutraRow) error
	GetSutra(ref string) (*SutraRow, error)
	ListSutras(limit, offset, adhyaya, pada int) ([]SutraRow, int, error)
	Search(query string, limit int) ([]SearchResult, error)
	Count() (int, error)
	GetMeta(key string) (string, error)
	Close() error
}

// Verify *DB satisfies SutraIndex at compile time.
var _ SutraIndex = (*DB)(nil)
