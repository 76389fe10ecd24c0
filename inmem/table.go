package inmem

import (
	"github.com/ahmadsaad58/todo"
)

// Table is an in-memory implementation of todo.Table used in tests.
type Table struct {
	items map[todo.Key]todo.Item
}

func NewTable() *Table {
	return &Table{
		items: make(map[todo.Key]todo.Item),
	}
}

func (t *Table) Put(item todo.Item) error {
	t.items[item.Key()] = clone(item)
	return nil
}

func (t *Table) Get(key todo.Key) (todo.Item, error) {
	item, ok := t.items[key]
	if !ok {
		return nil, nil
	}
	return clone(item), nil
}

func (t *Table) SetIfNotExists(key todo.Key, attr string, value string) error {
	item, ok := t.items[key]
	if !ok {
		item = todo.NewItem(key)
		t.items[key] = item
	}

	if _, ok := item[attr]; ok {
		return todo.ErrConditionFailed
	}

	item[attr] = value
	return nil
}

func (t *Table) AppendList(key todo.Key, attr string, values ...string) error {
	item, ok := t.items[key]
	if !ok {
		item = todo.NewItem(key)
		t.items[key] = item
	}

	item[attr] = append(item.StringList(attr), values...)
	return nil
}

func (t *Table) RemoveListIndices(key todo.Key, attr string, indices ...int) error {
	item, ok := t.items[key]
	if !ok {
		return nil
	}

	list := item.StringList(attr)
	skip := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		skip[i] = struct{}{}
	}

	kept := make([]string, 0, len(list))
	for i, e := range list {
		if _, ok := skip[i]; ok {
			continue
		}
		kept = append(kept, e)
	}

	item[attr] = kept
	return nil
}

func (t *Table) RemoveAttribute(key todo.Key, attr string) error {
	if item, ok := t.items[key]; ok {
		delete(item, attr)
	}
	return nil
}

func (t *Table) Delete(key todo.Key) error {
	delete(t.items, key)
	return nil
}

// Size returns the number of records in the table.
func (t *Table) Size() int {
	return len(t.items)
}

func clone(item todo.Item) todo.Item {
	c := make(todo.Item, len(item))
	for attr, v := range item {
		if list, ok := v.([]string); ok {
			c[attr] = append([]string(nil), list...)
			continue
		}
		c[attr] = v
	}
	return c
}
