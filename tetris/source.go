package tetris

import "math/rand/v2"

// PieceSource supplies the kind of each newly generated piece.
type PieceSource interface {
	Next() Kind
}

// PieceSourceFunc adapts a plain function to PieceSource.
type PieceSourceFunc func() Kind

func (f PieceSourceFunc) Next() Kind { return f() }

type randomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a source that picks each kind uniformly at random.
// Equal seeds produce equal sequences.
func NewRandomSource(seed uint64) PieceSource {
	return &randomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *randomSource) Next() Kind {
	return allKinds[s.rng.IntN(len(allKinds))]
}

type bagSource struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagSource returns a source that deals all seven kinds in a shuffled
// order before reshuffling.
func NewBagSource(seed uint64) PieceSource {
	return &bagSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *bagSource) Next() Kind {
	if len(s.bag) == 0 {
		s.bag = Kinds()
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}
	kind := s.bag[0]
	s.bag = s.bag[1:]
	return kind
}

// SequenceSource replays a fixed list of kinds, starting over when it runs
// out. An empty sequence yields KindI.
type SequenceSource struct {
	kinds []Kind
	pos   int
}

// NewSequenceSource returns a source cycling through kinds in order. Invalid
// kinds are skipped.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	valid := make([]Kind, 0, len(kinds))
	for _, kind := range kinds {
		if kind.Valid() {
			valid = append(valid, kind)
		}
	}
	return &SequenceSource{kinds: valid}
}

func (s *SequenceSource) Next() Kind {
	if len(s.kinds) == 0 {
		return KindI
	}
	kind := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return kind
}

// Drawn returns how many kinds have been handed out so far.
func (s *SequenceSource) Drawn() int {
	return s.pos
}
