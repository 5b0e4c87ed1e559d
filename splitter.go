package lpreader

// splitSections partitions the processed-token sequence by section
// headers into per-section token buckets, spec.md §4.3. A section kind
// appearing twice is a structural parse error; the "none" bucket (for
// anything before the first header) must end empty.
func splitSections(m *Model, toks []procToken) (map[sectionKind][]procToken, error) {
	buckets := make(map[sectionKind][]procToken)
	current := sectionNone

	for _, tok := range toks {
		if tok.Kind == procSectionHeader {
			if _, seen := buckets[tok.Section]; seen {
				return nil, structuralErrorf(tok.Line, tok.Col, tok.Section.String(), "duplicate section %s", tok.Section)
			}
			buckets[tok.Section] = nil // mark as seen even if it ends up empty

			if tok.Section == sectionObjective {
				m.Sense = tok.Sense
			}

			current = tok.Section
			continue
		}

		buckets[current] = append(buckets[current], tok)
	}

	if len(buckets[sectionNone]) != 0 {
		t := buckets[sectionNone][0]
		return nil, structuralErrorf(t.Line, t.Col, "", "tokens found before the first section header")
	}

	return buckets, nil
}
