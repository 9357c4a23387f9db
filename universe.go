package surreal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// structureDomain is the domain prefix for content-addressed structure
// identity. Format: SHA256(domain + 0x00 + encoded children).
// Version suffix enables future algorithm migration.
const structureDomain = "surreal/structure/v1"

// ID is the content-addressed identity of an interned structure.
//
// Interning the same sorted option lists always yields the same ID, across
// calls and across goroutines. Equal IDs imply equal numbers; the converse
// does NOT hold. Use Number.Eq for mathematical equality, never ID equality.
type ID string

// idPair keys the binary memo tables (leq, add, mul).
type idPair struct{ x, y ID }

// structure is an interned (left, right) option pair. Both slices are sorted
// under the derived total order at intern time and never mutated afterwards,
// so lookups may hand them out without copying.
type structure struct {
	left  []ID
	right []ID
}

// Universe owns the structure cache and the memo tables for one independent
// instance of the number system.
//
// All state is append-only: entries persist for the universe's lifetime and
// there is no eviction. Isolated universes make tests reproducible - a fresh
// Universe starts with empty caches and deterministic contents.
//
// INVARIANTS:
//   - cache is get-or-insert only; an ID handed out once resolves forever
//   - no lock is ever held across a recursive call into the same table
type Universe struct {
	label string // uuid, for diagnostics when handles are misused

	mu    sync.Mutex
	cache map[ID]*structure

	leqMu sync.Mutex
	leq   map[idPair]bool

	addMu sync.Mutex
	add   map[idPair]ID

	negMu sync.Mutex
	neg   map[ID]ID

	mulMu sync.Mutex
	mul   map[idPair]ID
}

// NewUniverse creates an empty universe with a fresh diagnostic label.
func NewUniverse() *Universe {
	return &Universe{
		label: uuid.NewString(),
		cache: make(map[ID]*structure),
		leq:   make(map[idPair]bool),
		add:   make(map[idPair]ID),
		neg:   make(map[ID]ID),
		mul:   make(map[idPair]ID),
	}
}

// Label returns the universe's diagnostic label. Labels are unique per
// universe and appear in invariant-violation panics to identify which
// universe a misused handle belongs to.
func (u *Universe) Label() string {
	return u.label
}

// Size returns the number of distinct structures interned so far.
// Includes structures minted by failed validating constructions.
func (u *Universe) Size() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.cache)
}

// intern sorts both option lists under the derived total order and performs
// a get-or-insert on the structure cache. This is the unchecked mint: it
// never validates left<right and will happily intern a pseudo structure.
//
// Sorting compares children through the order relation, which recurses back
// into the cache, so it must run before the cache lock is taken.
func (u *Universe) intern(left, right []ID) ID {
	l := u.sortOptions(left)
	r := u.sortOptions(right)
	id := structureID(l, r)

	u.mu.Lock()
	if _, ok := u.cache[id]; !ok {
		u.cache[id] = &structure{left: l, right: r}
	}
	u.mu.Unlock()
	return id
}

// sortOptions returns a copy of ids sorted ascending under the derived
// order. Stable so that structurally distinct but equal-valued options keep
// a deterministic relative position.
func (u *Universe) sortOptions(ids []ID) []ID {
	out := make([]ID, len(ids))
	copy(out, ids)
	sort.SliceStable(out, func(i, j int) bool { return u.cmpID(out[i], out[j]) < 0 })
	return out
}

// lookup resolves an ID to its interned structure. A miss means the caller
// holds an ID this universe never minted (a foreign or fabricated handle);
// that is an internal-invariant violation, never an expected outcome, so it
// panics rather than returning an error.
func (u *Universe) lookup(id ID) *structure {
	u.mu.Lock()
	s, ok := u.cache[id]
	u.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("surreal: universe %s has no structure for id %s", u.label, shortID(id)))
	}
	return s
}

// leftOf returns the sorted left options of id. The slice is shared with the
// cache and must not be mutated.
func (u *Universe) leftOf(id ID) []ID {
	return u.lookup(id).left
}

// rightOf returns the sorted right options of id.
func (u *Universe) rightOf(id ID) []ID {
	return u.lookup(id).right
}

// structureID computes the content-addressed ID over sorted option lists.
// IDs are fixed-length hex, so the 0x00 child separator and the 0x01 side
// separator make the encoding unambiguous.
func structureID(left, right []ID) ID {
	h := sha256.New()
	h.Write([]byte(structureDomain))
	h.Write([]byte{0x00})
	for _, id := range left {
		h.Write([]byte(id))
		h.Write([]byte{0x00})
	}
	h.Write([]byte{0x01})
	for _, id := range right {
		h.Write([]byte(id))
		h.Write([]byte{0x00})
	}
	return ID(hex.EncodeToString(h.Sum(nil)))
}

// shortID abbreviates an ID for log and panic messages.
func shortID(id ID) string {
	if len(id) > 12 {
		return string(id[:12]) + "…"
	}
	return string(id)
}
