package source

type (
	// FileID uniquely identifies a template file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a template file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, literal string, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
)

// File captures metadata and content for a single template file.
// Content is the raw template text; every token produced from the file
// carries a Span into it, so the original bytes stay the single source
// of truth for the whole render.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol represents a human-readable position in a template file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
