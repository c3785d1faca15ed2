// Package piecehasher splits binary payloads into content-addressed,
// individually hashed pieces sized by a tiered policy.
package piecehasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

// DefaultMaxObjectSize is the top piece-size tier threshold: 2 MiB,
// the largest attachment the marketplace accepts.
const DefaultMaxObjectSize = 2 * 1024 * 1024

// MinPieceSize is the floor of the tier table. Payloads below the
// smallest threshold are hashed as a single 16 KiB-tier piece.
const MinPieceSize = 16 * 1024

// Hasher chunks payloads and hashes each piece with SHA-256.
type Hasher struct {
	maxObjectSize int64
	workers       int
}

// Option configures the hasher.
type Option func(*Hasher)

// WithMaxObjectSize sets the top tier threshold in bytes.
func WithMaxObjectSize(size int64) Option {
	return func(h *Hasher) {
		if size >= 2*MinPieceSize {
			h.maxObjectSize = size
		}
	}
}

// WithWorkers sets the number of concurrent hash workers.
func WithWorkers(n int) Option {
	return func(h *Hasher) {
		if n > 0 {
			h.workers = n
		}
	}
}

// New creates a hasher with the given options.
func New(opts ...Option) *Hasher {
	h := &Hasher{
		maxObjectSize: DefaultMaxObjectSize,
		workers:       runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// PieceSize returns the policy piece size for a payload of the given
// size. Thresholds halve from the maximum object size down to twice
// the floor; a payload at or above a threshold gets half that
// threshold as its piece size, so piece count stays bounded for large
// objects while small objects fit in a single piece.
func (h *Hasher) PieceSize(size int64) uint32 {
	for threshold := h.maxObjectSize; threshold >= 2*MinPieceSize; threshold /= 2 {
		if size >= threshold {
			return uint32(threshold / 2)
		}
	}
	return MinPieceSize
}

// HashReader splits size bytes from r into pieces and hashes each.
// Pieces are hashed concurrently but returned in stream order.
// A source yielding zero pieces returns domain.ErrEmptyPayload.
func (h *Hasher) HashReader(r io.Reader, size int64) ([]domain.ObjectPiece, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", domain.ErrInvalidInput, size)
	}
	if size == 0 {
		return nil, domain.ErrEmptyPayload
	}

	pieceSize := h.PieceSize(size)
	count := int((size + int64(pieceSize) - 1) / int64(pieceSize))

	pieces := make([]domain.ObjectPiece, 0, count)
	var offset uint64
	for index := 0; ; index++ {
		buf := make([]byte, pieceSize)
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			pieces = append(pieces, domain.ObjectPiece{
				Index:  index,
				Offset: offset,
				Length: uint32(n),
				Bytes:  buf[:n],
			})
			offset += uint64(n)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read piece %d: %w", index, err)
		}
	}

	if len(pieces) == 0 {
		return nil, domain.ErrEmptyPayload
	}

	h.hashPieces(pieces)

	// Coverage contract: pieces tile [0, size) exactly once.
	// A violation is a programming error, not a recoverable state.
	if offset != uint64(size) {
		panic(fmt.Sprintf("piecehasher: pieces cover %d bytes of a %d byte payload", offset, size))
	}

	return pieces, nil
}

// HashFile chunks and hashes the file at path, returning the ordered
// pieces and the descriptor a document embeds for them. An
// unreadable file is reported as domain.ErrEmptyPayload, matching the
// hashing error taxonomy.
func (h *Hasher) HashFile(path string) ([]domain.ObjectPiece, *domain.ObjectDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open %s: %v", domain.ErrEmptyPayload, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	pieces, err := h.HashReader(f, info.Size())
	if err != nil {
		return nil, nil, err
	}

	return pieces, h.Descriptor(path, pieces), nil
}

// hashPieces fills in the Hash field of every piece, fanning out over
// the configured worker count. Output ordering is preserved because
// each worker writes only its own slot.
func (h *Hasher) hashPieces(pieces []domain.ObjectPiece) {
	workers := h.workers
	if workers > len(pieces) {
		workers = len(pieces)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				sum := sha256.Sum256(pieces[i].Bytes)
				pieces[i].Hash = hex.EncodeToString(sum[:])
			}
		}()
	}
	for i := range pieces {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// Descriptor builds the ObjectDescriptor a document embeds for the
// hashed pieces. The descriptor name is the SHA-256 of the source's
// base name (extension kept), matching how published attachments are
// stored on disk.
func (h *Hasher) Descriptor(sourcePath string, pieces []domain.ObjectPiece) *domain.ObjectDescriptor {
	var total uint64
	hashes := make([]string, len(pieces))
	for i, p := range pieces {
		total += uint64(p.Length)
		hashes[i] = p.Hash
	}

	return &domain.ObjectDescriptor{
		Name:       hashedName(sourcePath),
		Size:       total,
		PieceSize:  h.PieceSize(int64(total)),
		Pieces:     hashes,
		SourcePath: sourcePath,
		ID:         uuid.New().String(),
	}
}

// hashedName derives the content-addressed file name: sha256 of the
// base name without extension, with the original extension appended.
func hashedName(sourcePath string) string {
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	sum := sha256.Sum256([]byte(stem))
	return hex.EncodeToString(sum[:]) + ext
}
