package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/ahmadsaad58/todo"
)

// DefaultTable is the table used when no name is given.
const DefaultTable = "group-todo"

// Table stores group and member records as JSON documents in a single
// bucket named after the table.
type Table struct {
	Driver *Driver

	bucket []byte
}

// NewTable connects to the table defined by name, creating its bucket if
// needed. An empty name connects to DefaultTable.
func NewTable(driver *Driver, name string) (*Table, error) {
	if name == "" {
		name = DefaultTable
	}

	bucket := []byte(name)
	err := driver.store.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return fmt.Errorf("error creating bucket %s: %v", name, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Table{Driver: driver, bucket: bucket}, nil
}

func (t *Table) Put(item todo.Item) error {
	return t.Driver.store.Update(func(tx *bolt.Tx) error {
		return t.put(tx, item)
	})
}

func (t *Table) Get(key todo.Key) (todo.Item, error) {
	var item todo.Item
	err := t.Driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(t.bucket).Get(ktob(key))
		if data == nil {
			return nil
		}

		item = todo.Item{}
		return json.Unmarshal(data, &item)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// SetIfNotExists runs the existence check and the set in one write
// transaction, making the check-and-set atomic against concurrent callers.
func (t *Table) SetIfNotExists(key todo.Key, attr string, value string) error {
	return t.Driver.store.Update(func(tx *bolt.Tx) error {
		item, err := t.get(tx, key)
		if err != nil {
			return err
		}
		if item == nil {
			item = todo.NewItem(key)
		}

		if _, ok := item[attr]; ok {
			return todo.ErrConditionFailed
		}

		item[attr] = value
		return t.put(tx, item)
	})
}

func (t *Table) AppendList(key todo.Key, attr string, values ...string) error {
	return t.Driver.store.Update(func(tx *bolt.Tx) error {
		item, err := t.get(tx, key)
		if err != nil {
			return err
		}
		if item == nil {
			item = todo.NewItem(key)
		}

		item[attr] = append(item.StringList(attr), values...)
		return t.put(tx, item)
	})
}

// RemoveListIndices applies sparse removal: every listed position that
// exists is dropped, positions past the end and negative positions are
// skipped, duplicates collapse.
func (t *Table) RemoveListIndices(key todo.Key, attr string, indices ...int) error {
	return t.Driver.store.Update(func(tx *bolt.Tx) error {
		item, err := t.get(tx, key)
		if err != nil {
			return err
		}
		if item == nil {
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
		return t.put(tx, item)
	})
}

func (t *Table) RemoveAttribute(key todo.Key, attr string) error {
	return t.Driver.store.Update(func(tx *bolt.Tx) error {
		item, err := t.get(tx, key)
		if err != nil {
			return err
		}
		if item == nil {
			return nil
		}

		delete(item, attr)
		return t.put(tx, item)
	})
}

func (t *Table) Delete(key todo.Key) error {
	return t.Driver.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(t.bucket).Delete(ktob(key))
	})
}

func (t *Table) get(tx *bolt.Tx, key todo.Key) (todo.Item, error) {
	data := tx.Bucket(t.bucket).Get(ktob(key))
	if data == nil {
		return nil, nil
	}

	item := todo.Item{}
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return item, nil
}

func (t *Table) put(tx *bolt.Tx, item todo.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}

	return tx.Bucket(t.bucket).Put(ktob(item.Key()), data)
}

// ------------------------------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------------------------------

// ktob encodes a composite key as bucket key bytes. Ids are uuids, so the
// zero byte separator cannot appear in them.
func ktob(k todo.Key) []byte {
	b := make([]byte, 0, len(k.ID)+len(k.Name)+1)
	b = append(b, k.ID...)
	b = append(b, 0)
	b = append(b, k.Name...)
	return b
}
