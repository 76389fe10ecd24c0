package todo

import (
	"errors"
)

// ErrConditionFailed is returned by Table.SetIfNotExists when the attribute
// it guards already exists. Implementations must return this exact value:
// callers rely on it to tell a failed precondition apart from an
// infrastructure failure.
var ErrConditionFailed = errors.New("conditional update failed: attribute already exists")

// Key is the composite primary key of the table. Every record, group or
// member, is addressed by its id and its name.
type Key struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Reserved attribute names. They always hold the record's own key and are
// never part of a group's member mapping.
const (
	AttrID   = "id"
	AttrName = "name"
	AttrTodo = "todo"
)

// Item is a schemaless record. Beyond the reserved key attributes, a group
// record maps member names to member ids, and a member record holds its
// todo list under AttrTodo.
type Item map[string]interface{}

// NewItem returns an item holding only its key attributes.
func NewItem(key Key) Item {
	return Item{
		AttrID:   key.ID,
		AttrName: key.Name,
	}
}

// Key extracts the composite key of the item.
func (it Item) Key() Key {
	id, _ := it.String(AttrID)
	name, _ := it.String(AttrName)
	return Key{ID: id, Name: name}
}

// String returns the attribute as a string. The second return value is
// false when the attribute is absent or not a string.
func (it Item) String(attr string) (string, bool) {
	v, ok := it[attr]
	if !ok {
		return "", false
	}

	s, ok := v.(string)
	return s, ok
}

// StringList returns the attribute as a list of strings. JSON decoding
// yields []interface{}, so both representations are accepted. An absent
// attribute reads as an empty list.
func (it Item) StringList(attr string) []string {
	switch v := it[attr].(type) {
	case []string:
		return v
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				list = append(list, s)
			}
		}
		return list
	}
	return []string{}
}

// Table is the contract of the backing document table. All calls are
// synchronous and independent: there is no cross-call atomicity, only
// SetIfNotExists is conditional within its single call.
type Table interface {
	// Put inserts or replaces a whole record.
	Put(Item) error

	// Get fetches the record under the exact key, nil when absent.
	Get(Key) (Item, error)

	// SetIfNotExists sets attr to value only if attr is not already
	// present, failing with ErrConditionFailed otherwise. When the record
	// itself is absent it is created with its key attributes, matching
	// document-store upsert semantics.
	SetIfNotExists(key Key, attr string, value string) error

	// AppendList appends values to the list under attr, preserving the
	// order given and leaving existing entries untouched.
	AppendList(key Key, attr string, values ...string) error

	// RemoveListIndices removes the entries at the given zero-based
	// positions of the list under attr. Removal is sparse: positions past
	// the end of the list, and negative positions, are no-ops, and
	// duplicate positions collapse into one removal.
	RemoveListIndices(key Key, attr string, indices ...int) error

	// RemoveAttribute drops attr from the record, a no-op when either the
	// record or the attribute is absent.
	RemoveAttribute(key Key, attr string) error

	// Delete removes the whole record under the key.
	Delete(Key) error
}
