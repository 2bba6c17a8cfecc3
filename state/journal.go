package state

// AccessKind distinguishes reads from writes in the journal.
type AccessKind int

const (
	AccessRead AccessKind = iota
	AccessWrite
)

// Access is one backend access recorded by the journaling manager.
// Width is the element width in bytes; Value holds the element
// zero-extended to 64 bits.
type Access struct {
	Kind   AccessKind
	Region int
	Offset uint64
	Width  uint8
	Value  uint64
}

var _ = Manager(&Journaling{})

// Journaling wraps another Manager and records every access to every
// region it allocated, in execution order. The journal is the raw
// material for committing machine state and replaying a step against an
// external store.
type Journaling struct {
	inner   Manager
	log     []Access
	regions int
}

// NewJournaling returns a journaling Manager layered over inner.
func NewJournaling(inner Manager) *Journaling {
	return &Journaling{inner: inner}
}

// Allocate implements the interface for Manager. Each region gets an
// ordinal (in allocation order) so journal entries can be tied back to
// their owner.
func (j *Journaling) Allocate(n uint64) Region {
	r := journalRegion{r: j.inner.Allocate(n), m: j, id: j.regions}
	j.regions++
	return r
}

// Journal returns the accesses recorded so far in execution order. The
// returned slice is owned by the manager until Reset is called.
func (j *Journaling) Journal() []Access {
	return j.log
}

// Reset discards the journal, typically between committed steps.
func (j *Journaling) Reset() {
	j.log = nil
}

func (j *Journaling) record(a Access) {
	j.log = append(j.log, a)
}

// journalRegion implements Region by delegating to the wrapped region
// and recording each access with its owning manager.
type journalRegion struct {
	r  Region
	m  *Journaling
	id int
}

func (r journalRegion) Len() uint64 {
	return r.r.Len()
}

func (r journalRegion) Read8(off uint64) uint8 {
	v := r.r.Read8(off)
	r.m.record(Access{Kind: AccessRead, Region: r.id, Offset: off, Width: 1, Value: uint64(v)})
	return v
}

func (r journalRegion) Write8(off uint64, v uint8) {
	r.r.Write8(off, v)
	r.m.record(Access{Kind: AccessWrite, Region: r.id, Offset: off, Width: 1, Value: uint64(v)})
}

func (r journalRegion) Read16(off uint64) uint16 {
	v := r.r.Read16(off)
	r.m.record(Access{Kind: AccessRead, Region: r.id, Offset: off, Width: 2, Value: uint64(v)})
	return v
}

func (r journalRegion) Write16(off uint64, v uint16) {
	r.r.Write16(off, v)
	r.m.record(Access{Kind: AccessWrite, Region: r.id, Offset: off, Width: 2, Value: uint64(v)})
}

func (r journalRegion) Read32(off uint64) uint32 {
	v := r.r.Read32(off)
	r.m.record(Access{Kind: AccessRead, Region: r.id, Offset: off, Width: 4, Value: uint64(v)})
	return v
}

func (r journalRegion) Write32(off uint64, v uint32) {
	r.r.Write32(off, v)
	r.m.record(Access{Kind: AccessWrite, Region: r.id, Offset: off, Width: 4, Value: uint64(v)})
}

func (r journalRegion) Read64(off uint64) uint64 {
	v := r.r.Read64(off)
	r.m.record(Access{Kind: AccessRead, Region: r.id, Offset: off, Width: 8, Value: v})
	return v
}

func (r journalRegion) Write64(off uint64, v uint64) {
	r.r.Write64(off, v)
	r.m.record(Access{Kind: AccessWrite, Region: r.id, Offset: off, Width: 8, Value: v})
}
