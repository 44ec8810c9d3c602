package bitpacking

// transformer and sink are the Transform/Sink strategy pair from the
// spec: composing one of each into a kernel adds delta-encoding on the
// input side, or delta-integration on the output side, without
// duplicating the 33 pack/unpack kernels per mode. Kernels take these
// as a generic type parameter (not an interface value) so the identity
// and delta variants are inlined at each call site instead of going
// through an indirect call per vector (spec §9, "Strategy composition
// without dynamic dispatch").
type transformer interface {
	transform(v vector) vector
}

type sink interface {
	process(v vector)
}

// identityTransform is the plain (non-delta) Transformer: it hands the
// loaded vector straight to the kernel.
type identityTransform struct{}

func (identityTransform) transform(v vector) vector { return v }

// deltaTransform is the delta-encoding Transformer. prev holds the
// previous vector's lanes (the per-sub-stream "previous" scalar); it is
// seeded from the caller-supplied initial value before the first vector
// of the block is transformed.
type deltaTransform struct {
	prev vector
}

func newDeltaTransform(initial uint32) *deltaTransform {
	return &deltaTransform{prev: vecBroadcast(initial)}
}

func (d *deltaTransform) transform(cur vector) vector {
	out := vecDelta(cur, d.prev)
	d.prev = cur
	return out
}

// storeSink is the plain Sink: it writes each unpacked vector straight
// into the destination block.
type storeSink struct {
	out []uint32
	pos int
}

func newStoreSink(out []uint32) *storeSink {
	return &storeSink{out: out}
}

func (s *storeSink) process(v vector) {
	storeValues(s.out, s.pos, v)
	s.pos++
}

// integrateSink is the delta-integrating Sink: it folds each unpacked
// delta vector into a running prefix sum, seeded from the caller-supplied
// initial value, and writes the running vector (not the raw delta).
type integrateSink struct {
	cur vector
	out []uint32
	pos int
}

func newIntegrateSink(initial uint32, out []uint32) *integrateSink {
	return &integrateSink{cur: vecBroadcast(initial), out: out}
}

func (s *integrateSink) process(d vector) {
	s.cur = vecIntegrate(s.cur, d)
	storeValues(s.out, s.pos, s.cur)
	s.pos++
}
