package mapper

// Seq is a lazily produced, single-pass sequence of mapped values. The input
// is enumerated exactly once, element by element, while the caller pulls:
//
//	for seq.Next() {
//		use(seq.Val())
//	}
//	if err := seq.Err(); err != nil {
//		...
//	}
//
// A transformer error ends the sequence and surfaces via Err with its
// original identity. A Seq is not safe for concurrent use.
type Seq[D any] struct {
	pull func() (D, bool, error)
	cur  D
	err  error
	done bool
}

func newSeq[D any](pull func() (D, bool, error)) *Seq[D] {
	return &Seq[D]{
		pull: pull,
	}
}

// Next advances the sequence. It returns false once the input is exhausted or
// a transformer failed; check Err afterwards.
func (s *Seq[D]) Next() bool {
	if s.done {
		return false
	}

	val, ok, err := s.pull()
	if err != nil {
		s.err = err
		s.done = true

		return false
	}

	if !ok {
		s.done = true

		return false
	}

	s.cur = val

	return true
}

// Val returns the value produced by the last successful Next.
func (s *Seq[D]) Val() D {
	return s.cur
}

// Err returns the error which ended the sequence, if any.
func (s *Seq[D]) Err() error {
	return s.err
}

// Collect drains the remaining sequence into a slice.
func (s *Seq[D]) Collect() ([]D, error) {
	var out []D

	for s.Next() {
		out = append(out, s.Val())
	}

	if s.err != nil {
		return nil, s.err
	}

	return out, nil
}
