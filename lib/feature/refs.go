//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package feature

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/hts/sam"
)

// Catalog is the ordered reference sequence table of a run. The position
// of a chromosome in the catalog is its reference ID; features sort by
// (reference ID, left). Immutable once built.
type Catalog struct {
	names   []string
	lengths []int
	ids     map[string]int
}

func NewCatalog(names []string, lengths []int) (*Catalog, error) {
	if len(names) != len(lengths) {
		return nil, fmt.Errorf("catalog: %d names for %d lengths", len(names), len(lengths))
	}
	cat := &Catalog{names: names, lengths: lengths, ids: make(map[string]int, len(names))}
	for i, name := range names {
		if _, ok := cat.ids[name]; ok {
			return nil, fmt.Errorf("catalog: duplicate reference %s", name)
		}
		cat.ids[name] = i
	}
	return cat, nil
}

// ReadLengths parses a two-column tabulated file with reference name and
// length, in catalog order.
func ReadLengths(r io.Reader) (*Catalog, error) {
	var names []string
	var lengths []int
	tscanner := bufio.NewScanner(r)
	nLine := 0
	for tscanner.Scan() {
		nLine++
		text := tscanner.Text()
		if len(text) == 0 {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("reference lengths: missing length column at line %d", nLine)
		}
		length, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("reference lengths: bad length at line %d: %w", nLine, err)
		}
		names = append(names, fields[0])
		lengths = append(lengths, length)
	}
	if err := tscanner.Err(); err != nil {
		return nil, err
	}
	return NewCatalog(names, lengths)
}

// FromSAMHeader builds the catalog from the reference dictionary of a
// SAM/BAM header. Reference IDs match the header order, so record
// reference IDs are valid catalog IDs.
func FromSAMHeader(h *sam.Header) (*Catalog, error) {
	refs := h.Refs()
	names := make([]string, len(refs))
	lengths := make([]int, len(refs))
	for i, ref := range refs {
		names[i] = ref.Name()
		lengths[i] = ref.Len()
	}
	return NewCatalog(names, lengths)
}

func (cat *Catalog) Len() int           { return len(cat.names) }
func (cat *Catalog) Name(id int) string { return cat.names[id] }
func (cat *Catalog) Length(id int) int  { return cat.lengths[id] }

// ID returns the reference ID of a chromosome name.
func (cat *Catalog) ID(name string) (int, bool) {
	id, ok := cat.ids[name]
	return id, ok
}

// Lengths returns the reference lengths in catalog order.
func (cat *Catalog) Lengths() []int { return cat.lengths }
