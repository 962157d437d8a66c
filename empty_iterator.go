package roadgraph

// Empty is the shared cursor meaning "no edge". Only IsEmpty() is supported,
// every other method panics with ErrEmptyIterator.
var Empty EdgeSkipIterator = emptyIterator{}

type emptyIterator struct{}

func (emptyIterator) IsEmpty() bool {
	return true
}

func (emptyIterator) Next() bool {
	misuse(ErrEmptyIterator)
	return false
}

func (emptyIterator) Node() NodeID {
	misuse(ErrEmptyIterator)
	return 0
}

func (emptyIterator) Edge() EdgeID {
	misuse(ErrEmptyIterator)
	return InvalidEdge
}

func (emptyIterator) BaseNode() NodeID {
	misuse(ErrEmptyIterator)
	return 0
}

func (emptyIterator) Distance() float64 {
	misuse(ErrEmptyIterator)
	return 0
}

func (emptyIterator) SetDistance(float64) {
	misuse(ErrEmptyIterator)
}

func (emptyIterator) Flags() int {
	misuse(ErrEmptyIterator)
	return 0
}

func (emptyIterator) SetFlags(int) {
	misuse(ErrEmptyIterator)
}

func (emptyIterator) SkippedEdge() EdgeID {
	misuse(ErrEmptyIterator)
	return InvalidEdge
}

func (emptyIterator) SetSkippedEdge(EdgeID) {
	misuse(ErrEmptyIterator)
}
