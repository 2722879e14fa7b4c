package doc

// Index is the JSON document listing every documented resource and links to
// each of its examples.
type Index struct {
	Resources []Resource `json:"resources"`
}

// Resource is a single resource entry in the [Index].
type Resource struct {
	Name     string         `json:"name"`
	Examples []IndexExample `json:"examples"`
}

// IndexExample is a single example entry under a [Resource].
type IndexExample struct {
	Description string `json:"description"`
	Link        string `json:"link"`
	Groups      any    `json:"groups"`
}

// NewIndex builds the [Index] for examples.
//
// Grouping is delegated to sectioner and the resulting order is kept exactly as given,
// one resource per section and one entry per example.
func NewIndex(examples []Example, sectioner Sectioner) Index {
	sections := sectioner.Sections(examples)

	index := Index{Resources: make([]Resource, 0, len(sections))}

	for _, section := range sections {
		resource := Resource{
			Name:     section.ResourceName,
			Examples: make([]IndexExample, 0, len(section.Examples)),
		}

		for _, example := range section.Examples {
			resource.Examples = append(resource.Examples, IndexExample{
				Description: example.Description,
				Link:        example.Link(),
				Groups:      example.Group,
			})
		}

		index.Resources = append(index.Resources, resource)
	}

	return index
}
