// File: providers.go
// Role: Provider streams consumed by bulk loads, with optional capabilities
// and the slice/projection/function adapters that implement them.

package core

// EdgeInput is a finite, single-pass stream of edge records in load order.
// Loaders call Next until the second result is false; re-iteration is not
// required.
type EdgeInput[VId Unsigned, EV any] interface {
	// Next returns the next record and true, or a zero record and false
	// when the stream is exhausted.
	Next() (Edge[VId, EV], bool)
}

// VertexInput is a finite, single-pass stream of vertex records.
// Record ids may arrive in any order.
type VertexInput[VId Unsigned, VV any] interface {
	Next() (Vertex[VId, VV], bool)
}

// Sized is the optional capability of inputs that know their record count
// up front. Loaders use it to pre-reserve storage.
type Sized interface {
	// Len returns the total number of records the stream will yield.
	Len() int
}

// Tailed is the optional capability of edge inputs with cheap access to
// their final record. Loaders use it to pre-scan the maximum vertex id.
type Tailed[VId Unsigned, EV any] interface {
	// Last returns the final record without consuming the stream,
	// or false for an empty input.
	Last() (Edge[VId, EV], bool)
}

// EdgeSliceInput adapts a slice of edge records. It implements EdgeInput,
// Sized, and Tailed.
type EdgeSliceInput[VId Unsigned, EV any] struct {
	records []Edge[VId, EV]
	pos     int
}

// EdgeSlice returns a provider over records, yielding them in slice order.
func EdgeSlice[VId Unsigned, EV any](records []Edge[VId, EV]) *EdgeSliceInput[VId, EV] {
	return &EdgeSliceInput[VId, EV]{records: records}
}

// Next yields the next record in slice order.
func (in *EdgeSliceInput[VId, EV]) Next() (Edge[VId, EV], bool) {
	if in.pos >= len(in.records) {
		return Edge[VId, EV]{}, false
	}
	rec := in.records[in.pos]
	in.pos++

	return rec, true
}

// Len reports the total record count.
func (in *EdgeSliceInput[VId, EV]) Len() int { return len(in.records) }

// Last reports the final record without consuming the stream.
func (in *EdgeSliceInput[VId, EV]) Last() (Edge[VId, EV], bool) {
	if len(in.records) == 0 {
		return Edge[VId, EV]{}, false
	}

	return in.records[len(in.records)-1], true
}

// EdgeProjInput adapts a slice of arbitrary elements through a caller
// projection. It implements EdgeInput, Sized, and Tailed.
type EdgeProjInput[T any, VId Unsigned, EV any] struct {
	items []T
	proj  func(T) Edge[VId, EV]
	pos   int
}

// ProjectEdges returns a provider over items, projecting each element to an
// edge record with proj. proj must be pure and total.
func ProjectEdges[T any, VId Unsigned, EV any](items []T, proj func(T) Edge[VId, EV]) *EdgeProjInput[T, VId, EV] {
	return &EdgeProjInput[T, VId, EV]{items: items, proj: proj}
}

// Next projects and yields the next element.
func (in *EdgeProjInput[T, VId, EV]) Next() (Edge[VId, EV], bool) {
	if in.pos >= len(in.items) {
		return Edge[VId, EV]{}, false
	}
	rec := in.proj(in.items[in.pos])
	in.pos++

	return rec, true
}

// Len reports the total record count.
func (in *EdgeProjInput[T, VId, EV]) Len() int { return len(in.items) }

// Last projects the final element without consuming the stream.
func (in *EdgeProjInput[T, VId, EV]) Last() (Edge[VId, EV], bool) {
	if len(in.items) == 0 {
		return Edge[VId, EV]{}, false
	}

	return in.proj(in.items[len(in.items)-1]), true
}

// EdgeFuncInput adapts a pull function into an EdgeInput. It advertises no
// optional capabilities, which makes it the stand-in for genuinely
// streaming sources (and for exercising the unsized/untailed load paths).
type EdgeFuncInput[VId Unsigned, EV any] struct {
	next func() (Edge[VId, EV], bool)
}

// EdgeFunc wraps next as a capability-free edge stream.
func EdgeFunc[VId Unsigned, EV any](next func() (Edge[VId, EV], bool)) *EdgeFuncInput[VId, EV] {
	return &EdgeFuncInput[VId, EV]{next: next}
}

// Next pulls the next record from the wrapped function.
func (in *EdgeFuncInput[VId, EV]) Next() (Edge[VId, EV], bool) { return in.next() }

// VertexSliceInput adapts a slice of vertex records. It implements
// VertexInput and Sized.
type VertexSliceInput[VId Unsigned, VV any] struct {
	records []Vertex[VId, VV]
	pos     int
}

// VertexSlice returns a provider over records, yielding them in slice order.
func VertexSlice[VId Unsigned, VV any](records []Vertex[VId, VV]) *VertexSliceInput[VId, VV] {
	return &VertexSliceInput[VId, VV]{records: records}
}

// Next yields the next record in slice order.
func (in *VertexSliceInput[VId, VV]) Next() (Vertex[VId, VV], bool) {
	if in.pos >= len(in.records) {
		return Vertex[VId, VV]{}, false
	}
	rec := in.records[in.pos]
	in.pos++

	return rec, true
}

// Len reports the total record count.
func (in *VertexSliceInput[VId, VV]) Len() int { return len(in.records) }

// VertexProjInput adapts a slice of arbitrary elements through a caller
// projection. It implements VertexInput and Sized.
type VertexProjInput[T any, VId Unsigned, VV any] struct {
	items []T
	proj  func(T) Vertex[VId, VV]
	pos   int
}

// ProjectVertices returns a provider over items, projecting each element to
// a vertex record with proj. proj must be pure and total.
func ProjectVertices[T any, VId Unsigned, VV any](items []T, proj func(T) Vertex[VId, VV]) *VertexProjInput[T, VId, VV] {
	return &VertexProjInput[T, VId, VV]{items: items, proj: proj}
}

// Next projects and yields the next element.
func (in *VertexProjInput[T, VId, VV]) Next() (Vertex[VId, VV], bool) {
	if in.pos >= len(in.items) {
		return Vertex[VId, VV]{}, false
	}
	rec := in.proj(in.items[in.pos])
	in.pos++

	return rec, true
}

// Len reports the total record count.
func (in *VertexProjInput[T, VId, VV]) Len() int { return len(in.items) }

// VertexFuncInput adapts a pull function into a VertexInput with no
// optional capabilities.
type VertexFuncInput[VId Unsigned, VV any] struct {
	next func() (Vertex[VId, VV], bool)
}

// VertexFunc wraps next as a capability-free vertex stream.
func VertexFunc[VId Unsigned, VV any](next func() (Vertex[VId, VV], bool)) *VertexFuncInput[VId, VV] {
	return &VertexFuncInput[VId, VV]{next: next}
}

// Next pulls the next record from the wrapped function.
func (in *VertexFuncInput[VId, VV]) Next() (Vertex[VId, VV], bool) { return in.next() }
