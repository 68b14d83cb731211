package types

// Binding is one matched assignment of query variables to RDF terms, produced
// during evaluation of a partial match.
type Binding map[string]string

// Page is an ordered batch of bindings, treated as an atomic unit of work for
// partitioning.
//
// Pages are immutable from the engine's perspective: algorithms reorder and
// group pages but never mutate their contents.
type Page struct {
	// Bindings holds the binding tuples of this page, in production order.
	Bindings []Binding `json:"bindings"`
}

// Weight returns the processing cost of the page, measured as its number of
// binding tuples.
//
// Returns:
//   - int: Binding tuple count (0 for an empty page)
func (p Page) Weight() int {
	return len(p.Bindings)
}
