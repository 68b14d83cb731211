package types

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Bin is the working collection of pages tentatively assigned to one source
// during an algorithm run.
type Bin struct {
	// Pages holds the assigned pages, in assignment order.
	Pages []Page `json:"pages"`
}

// Weight returns the total weight of the bin, the sum of its pages' weights.
//
// Returns:
//   - int: Total binding tuple count across all pages in the bin
func (b Bin) Weight() int {
	weight := 0
	for _, page := range b.Pages {
		weight += page.Weight()
	}

	return weight
}

// Pair associates one source with the ordered list of pages assigned to it.
type Pair struct {
	// Source is the federated endpoint receiving the pages.
	Source Source `json:"source"`

	// Pages is the ordered list of pages assigned to the source.
	Pages []Page `json:"pages"`
}

// PageCount returns the number of pages assigned to the source.
func (p Pair) PageCount() int {
	return len(p.Pages)
}

// TotalBindings returns the total number of binding tuples assigned to the
// source, i.e. the weight of the pair's bin.
func (p Pair) TotalBindings() int {
	return Bin{Pages: p.Pages}.Weight()
}

// Partition is the final assignment of every page to exactly one source,
// expressed as ordered (source, pages) pairs.
//
// A partition always contains exactly one pair per configured source, in the
// configured source order, even when some bins are empty.
type Partition struct {
	// Algorithm is the algorithm that produced this partition.
	Algorithm Algorithm `json:"algorithm"`

	// Pairs holds one (source, pages) pair per configured source, in source
	// configuration order.
	Pairs []Pair `json:"pairs"`
}

// TotalPages returns the number of pages across all pairs.
func (p *Partition) TotalPages() int {
	total := 0
	for _, pair := range p.Pairs {
		total += len(pair.Pages)
	}

	return total
}

// TotalBindings returns the number of binding tuples across all pairs.
func (p *Partition) TotalBindings() int {
	total := 0
	for _, pair := range p.Pairs {
		total += pair.TotalBindings()
	}

	return total
}

// WeightSpread returns the smallest and largest bin weights in the partition.
//
// The spread is the balancing quality indicator for a partition: for
// BestFitDecreasing the difference max-min is bounded by the maximum single
// page weight.
//
// Returns:
//   - min: Smallest bin weight (0 when the partition has no pairs)
//   - max: Largest bin weight (0 when the partition has no pairs)
func (p *Partition) WeightSpread() (minWeight, maxWeight int) {
	if len(p.Pairs) == 0 {
		return 0, 0
	}

	minWeight = p.Pairs[0].TotalBindings()
	maxWeight = minWeight
	for _, pair := range p.Pairs[1:] {
		w := pair.TotalBindings()
		if w < minWeight {
			minWeight = w
		}
		if w > maxWeight {
			maxWeight = w
		}
	}

	return minWeight, maxWeight
}

// HashID returns a stable fingerprint of the partition computed with xxh3 over
// the pair sources and per-page weights.
//
// Two partitions produced from the same configured state by the same algorithm
// hash to the same value, which makes HashID suitable for idempotence checks
// and cheap change detection. Page contents are not hashed.
//
// Returns:
//   - uint64: Partition fingerprint (0 for a partition with no pairs)
func (p *Partition) HashID() uint64 {
	return p.HashIDSeed(0)
}

// HashIDSeed returns the partition fingerprint computed with the given xxh3
// seed. A seed of 0 is equivalent to HashID.
//
// Parameters:
//   - seed: Hash seed value
//
// Returns:
//   - uint64: Seeded partition fingerprint (0 for a partition with no pairs)
func (p *Partition) HashIDSeed(seed uint64) uint64 {
	if len(p.Pairs) == 0 {
		return 0
	}

	// Sources and weights fully determine the fingerprint; separators keep
	// ("ab", 1) and ("a", "b1") from colliding.
	buf := make([]byte, 0, 64)
	for _, pair := range p.Pairs {
		buf = append(buf, pair.Source.ID...)
		buf = append(buf, 0)
		buf = binary.AppendUvarint(buf, uint64(len(pair.Pages)))
		for _, page := range pair.Pages {
			buf = binary.AppendUvarint(buf, uint64(page.Weight()))
		}
		buf = append(buf, 0xff)
	}

	if seed == 0 {
		return xxh3.Hash(buf)
	}

	return xxh3.HashSeed(buf, seed)
}
