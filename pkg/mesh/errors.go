package mesh

// Error types attached to errors returned by this package. errors.Type from
// github.com/aukilabs/go-tooling/pkg/errors reports them.
const (
	// ErrTypeMalformedInput marks unreadable mesh text: wrong token count,
	// non-numeric token, unknown record or out-of-range face index.
	ErrTypeMalformedInput = "mesh-malformed-input"

	// ErrTypeEmptyMesh marks a build without vertices or facets.
	ErrTypeEmptyMesh = "mesh-empty"

	// ErrTypeIO marks a failure to open, read or write a mesh file.
	ErrTypeIO = "mesh-io"
)
