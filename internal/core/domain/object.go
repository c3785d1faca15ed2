package domain

// ObjectPiece is one content-addressed chunk of a binary payload.
// Pieces are produced in stream order, non-overlapping, and cover the
// payload exactly once: sum of Length over all pieces equals the
// payload size.
type ObjectPiece struct {
	// Index is the ordinal position within the payload, starting at 0.
	Index int

	// Offset is the byte offset of the piece within the payload.
	Offset uint64

	// Length is the number of bytes in this piece. Every piece except
	// the last is exactly the policy piece size.
	Length uint32

	// Hash is the lowercase hex SHA-256 digest of exactly this
	// piece's bytes.
	Hash string

	// Bytes is the piece payload.
	Bytes []byte
}

// ObjectDescriptor is the metadata record a document embeds so a
// receiver can verify and reassemble a chunked attachment piece by
// piece. Reassembly itself happens elsewhere; this core only produces
// and projects descriptors.
type ObjectDescriptor struct {
	// Name is the content-derived file name (sha256 of the base name
	// plus the original extension).
	Name string

	// Size is the total payload size in bytes.
	Size uint64

	// PieceSize is the policy piece size used when the object was
	// hashed. The final piece may be shorter.
	PieceSize uint32

	// Pieces holds the per-piece SHA-256 digests in index order.
	Pieces []string

	// SourcePath is the local path the object was read from, if any.
	SourcePath string

	// ID is the ordinal or unique identifier assigned at upload time.
	ID string
}
