package paginator

const (
	// DefaultPage is the first page.
	DefaultPage = 1
	// DefaultLimit is the default page size.
	DefaultLimit int64 = 20
	// MaxLimit caps the page size.
	MaxLimit int64 = 100
)
