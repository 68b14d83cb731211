package types

// Source identifies one federated data endpoint that will evaluate a subset of
// binding pages in parallel.
//
// Sources are supplied as an ordered sequence with no duplicates; order is
// significant for the contiguous and round-robin algorithms.
type Source struct {
	// ID uniquely identifies the endpoint within the federation.
	ID string `json:"id"`

	// Endpoint is the SPARQL endpoint URL of the source.
	Endpoint string `json:"endpoint"`
}

// String returns a human-readable identifier for the source.
//
// Returns:
//   - string: The source ID, or the endpoint URL when no ID is set
func (s Source) String() string {
	if s.ID != "" {
		return s.ID
	}

	return s.Endpoint
}
