package doc_test

import (
	"encoding/json"
	"slices"
	"testing"

	"go.followtheprocess.codes/apidoc/internal/doc"
	"go.followtheprocess.codes/apidoc/internal/example"
	"go.followtheprocess.codes/test"
)

// records returns a small set of records across two resources, deliberately
// out of alphabetical order.
func records() []example.Record {
	return []example.Record{
		{ResourceName: "Users", HTTPMethod: "GET", Route: "/users", Description: "list users"},
		{ResourceName: "Orders", HTTPMethod: "POST", Route: "/orders", Description: "create an order"},
		{
			ResourceName: "Users",
			HTTPMethod:   "GET",
			Route:        "/users/:id",
			Description:  "get user",
			Metadata:     map[string]any{"document": "public"},
		},
		{ResourceName: "Orders", HTTPMethod: "GET", Route: "/orders", Description: "all orders"},
	}
}

// descriptions returns the description of every example in section.
func descriptions(section doc.Section) []string {
	var got []string
	for _, example := range section.Examples {
		got = append(got, example.Description)
	}

	return got
}

func TestResourceSectionerSorted(t *testing.T) {
	examples := doc.NewExamples(records(), doc.Options{})

	sections := doc.ResourceSectioner{}.Sections(examples)

	test.Equal(t, len(sections), 2)
	test.Equal(t, sections[0].ResourceName, "Orders")
	test.Equal(t, sections[1].ResourceName, "Users")

	test.EqualFunc(t, descriptions(sections[0]), []string{"all orders", "create an order"}, slices.Equal)
	test.EqualFunc(t, descriptions(sections[1]), []string{"get user", "list users"}, slices.Equal)

	// Input must not have been reordered
	test.Equal(t, examples[0].Description, "list users")
}

func TestResourceSectionerSourceOrder(t *testing.T) {
	examples := doc.NewExamples(records(), doc.Options{})

	sections := doc.ResourceSectioner{KeepSourceOrder: true}.Sections(examples)

	test.Equal(t, len(sections), 2)
	test.Equal(t, sections[0].ResourceName, "Users")
	test.Equal(t, sections[1].ResourceName, "Orders")

	test.EqualFunc(t, descriptions(sections[0]), []string{"list users", "get user"}, slices.Equal)
	test.EqualFunc(t, descriptions(sections[1]), []string{"create an order", "all orders"}, slices.Equal)
}

func TestResourceSectionerEmpty(t *testing.T) {
	sections := doc.ResourceSectioner{}.Sections(nil)
	test.Equal(t, len(sections), 0)
}

// reversed is a [doc.Sectioner] that puts every example in its own section in reverse
// order, used to check the index keeps the sectioner's order.
type reversed struct{}

func (reversed) Sections(examples []doc.Example) []doc.Section {
	sections := make([]doc.Section, 0, len(examples))
	for _, example := range slices.Backward(examples) {
		sections = append(sections, doc.Section{ResourceName: example.Resource, Examples: []doc.Example{example}})
	}

	return sections
}

func TestNewIndex(t *testing.T) {
	examples := doc.NewExamples(records(), doc.Options{})

	index := doc.NewIndex(examples, doc.ResourceSectioner{KeepSourceOrder: true})

	test.Equal(t, len(index.Resources), 2)

	users := index.Resources[0]
	test.Equal(t, users.Name, "Users")
	test.Equal(t, len(users.Examples), 2)
	test.Equal(t, users.Examples[0].Description, "list users")
	test.Equal(t, users.Examples[0].Link, "users/list_users.json")
	test.Equal(t, users.Examples[0].Groups, nil)
	test.Equal(t, users.Examples[1].Link, "users/get_user.json")
	test.Equal(t, users.Examples[1].Groups, any("public"))

	orders := index.Resources[1]
	test.Equal(t, orders.Name, "Orders")
	test.Equal(t, orders.Examples[0].Link, "orders/create_an_order.json")
	test.Equal(t, orders.Examples[1].Link, "orders/all_orders.json")
}

func TestNewIndexKeepsSectionerOrder(t *testing.T) {
	examples := doc.NewExamples(records(), doc.Options{})

	index := doc.NewIndex(examples, reversed{})

	var got []string
	for _, resource := range index.Resources {
		got = append(got, resource.Examples[0].Description)
	}

	test.EqualFunc(t, got, []string{"all orders", "get user", "create an order", "list users"}, slices.Equal)
}

func TestNewIndexJSON(t *testing.T) {
	examples := doc.NewExamples(records()[:1], doc.Options{})

	got, err := json.Marshal(doc.NewIndex(examples, doc.ResourceSectioner{}))
	test.Ok(t, err)

	want := `{"resources":[{"name":"Users","examples":[{"description":"list users","link":"users/list_users.json","groups":null}]}]}`
	test.Equal(t, string(got), want)
}

func TestNewIndexEmpty(t *testing.T) {
	got, err := json.Marshal(doc.NewIndex(nil, doc.ResourceSectioner{}))
	test.Ok(t, err)
	test.Equal(t, string(got), `{"resources":[]}`)
}
