package doc

import (
	"cmp"
	"slices"
)

// Section is a named group of example documents sharing a resource.
type Section struct {
	// ResourceName is the resource every example in the section documents.
	ResourceName string

	// Examples are the section's example documents.
	Examples []Example
}

// Sectioner groups example documents into sections.
type Sectioner interface {
	// Sections groups examples into an ordered list of sections.
	Sections(examples []Example) []Section
}

// ResourceSectioner is a [Sectioner] that groups examples by their resource name.
type ResourceSectioner struct {
	// KeepSourceOrder keeps resources in order of first appearance and examples in
	// the order given.
	//
	// When false, resources are sorted by name and each section's examples by description.
	KeepSourceOrder bool
}

// Sections implements [Sectioner] for [ResourceSectioner].
func (r ResourceSectioner) Sections(examples []Example) []Section {
	var sections []Section

	index := make(map[string]int)

	for _, example := range examples {
		i, ok := index[example.Resource]
		if !ok {
			i = len(sections)
			index[example.Resource] = i
			sections = append(sections, Section{ResourceName: example.Resource})
		}

		sections[i].Examples = append(sections[i].Examples, example)
	}

	if r.KeepSourceOrder {
		return sections
	}

	for _, section := range sections {
		slices.SortStableFunc(section.Examples, func(a, b Example) int {
			return cmp.Compare(a.Description, b.Description)
		})
	}

	slices.SortStableFunc(sections, func(a, b Section) int {
		return cmp.Compare(a.ResourceName, b.ResourceName)
	})

	return sections
}
