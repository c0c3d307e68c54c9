package domain

const notAssigned = "Not Assigned"

// NameIndex resolves foreign ids to display names. It is built once per
// fetched list instead of scanning the list for every row.
type NameIndex struct {
	resource string
	names    map[ID]string
}

// NewNameIndex creates an empty index for the named resource ("Customer", "Agent", ...)
func NewNameIndex(resource string) *NameIndex {
	return &NameIndex{resource: resource, names: make(map[ID]string)}
}

// Add registers name under every non-empty id. The first record added for an
// id wins, matching a front-to-back scan of the list.
func (i *NameIndex) Add(name string, ids ...ID) {
	for _, id := range ids {
		if id.IsZero() {
			continue
		}
		if _, exists := i.names[id]; !exists {
			i.names[id] = name
		}
	}
}

// Resolve returns the display name for id.
// A missing id is "Not Assigned"; an id with no match is "Unknown <Resource>".
func (i *NameIndex) Resolve(id ID) string {
	if id.IsZero() {
		return notAssigned
	}
	if name, ok := i.names[id]; ok {
		return name
	}
	return "Unknown " + i.resource
}

// CustomerIndex indexes customers by id and customer_id
func CustomerIndex(customers []Customer) *NameIndex {
	idx := NewNameIndex("Customer")
	for _, c := range customers {
		idx.Add(c.DisplayName(), c.ID, c.CustomerID)
	}
	return idx
}

// UserIndex indexes users under the given resource label ("User" or "Agent")
func UserIndex(resource string, users []User) *NameIndex {
	idx := NewNameIndex(resource)
	for _, u := range users {
		idx.Add(u.DisplayName(), u.ID)
	}
	return idx
}
