package group

import (
	"github.com/google/uuid"

	"github.com/ahmadsaad58/todo"
	"github.com/ahmadsaad58/todo/index"
	"github.com/ahmadsaad58/todo/log"
)

// Store creates and resolves groups against the backing table and the
// local name to id index file.
type Store struct {
	table  todo.Table
	index  *index.File
	logger log.Logger
}

func NewStore(table todo.Table, idx *index.File, logger log.Logger) *Store {
	return &Store{
		table:  table,
		index:  idx,
		logger: logger,
	}
}

// ResolveOrCreate returns the id mapped to name in the index, creating the
// group when the name is unknown.
//
// Creation is not serialized across processes: two processes resolving the
// same new name can each create a record with a different id, the last
// index write wins and the other record is orphaned.
func (s *Store) ResolveOrCreate(name string) (string, error) {
	if id, ok := s.index.Get(name); ok {
		return id, nil
	}

	return s.create(name)
}

// CreateGroup creates a new group, failing when the name is already taken.
func (s *Store) CreateGroup(name string) (string, error) {
	if _, ok := s.index.Get(name); ok {
		return "", errGroupExists(name)
	}

	return s.create(name)
}

// create writes the table record before the index entry: a crash in
// between leaves an orphaned table record discoverable by reconciliation,
// never an index entry pointing at nothing.
func (s *Store) create(name string) (string, error) {
	id := uuid.NewString()

	if err := s.table.Put(todo.NewItem(todo.Key{ID: id, Name: name})); err != nil {
		return "", err
	}

	s.index.Put(name, id)
	if err := s.index.Save(); err != nil {
		return "", err
	}

	s.logger.Debugf("created group %s (%s)", name, id)
	return id, nil
}

// Group resolves a handle on an existing group by name.
func (s *Store) Group(name string) (*Group, error) {
	id, ok := s.index.Get(name)
	if !ok {
		return nil, errGroupNotFound(name)
	}

	return &Group{id: id, name: name, store: s}, nil
}

// Group is a handle on one group record.
type Group struct {
	id    string
	name  string
	store *Store
}

func (g *Group) ID() string   { return g.id }
func (g *Group) Name() string { return g.name }

func (g *Group) key() todo.Key {
	return todo.Key{ID: g.id, Name: g.name}
}

// Delete removes every member record referenced by the group, the group
// record itself, and finally the index entry. The per-member loop is a
// sequence of independent deletes with no surrounding transaction: a crash
// mid-loop leaves orphaned member records that need manual reconciliation.
func (g *Group) Delete() error {
	item, err := g.store.table.Get(g.key())
	if err != nil {
		return err
	}

	if item != nil {
		for attr := range item {
			if attr == todo.AttrID || attr == todo.AttrName {
				continue
			}

			memberID, ok := item.String(attr)
			if !ok {
				continue
			}
			if err := g.store.table.Delete(todo.Key{ID: memberID, Name: attr}); err != nil {
				return err
			}
		}

		if err := g.store.table.Delete(g.key()); err != nil {
			return err
		}
	}

	g.store.index.Remove(g.name)
	if err := g.store.index.Save(); err != nil {
		return err
	}

	g.store.logger.Debugf("deleted group %s (%s)", g.name, g.id)
	return nil
}

// AddUser adds a member to the group. The conditional set on the group
// record is the only atomic step, so it links the name into the group
// before the member record exists: a reader racing between the two writes
// sees a dangling reference.
func (g *Group) AddUser(name string) error {
	id := uuid.NewString()

	err := g.store.table.SetIfNotExists(g.key(), name, id)
	if err == todo.ErrConditionFailed {
		return errMemberExists(name)
	} else if err != nil {
		return err
	}

	member := todo.NewItem(todo.Key{ID: id, Name: name})
	member[todo.AttrTodo] = []string{}
	return g.store.table.Put(member)
}

// RemoveUser deletes the member record, then unlinks the name from the
// group record. Same dangling-reference window as AddUser, reversed.
func (g *Group) RemoveUser(name string) error {
	id, err := g.memberID(name)
	if err != nil {
		return err
	}

	if err := g.store.table.Delete(todo.Key{ID: id, Name: name}); err != nil {
		return err
	}

	return g.store.table.RemoveAttribute(g.key(), name)
}

// AddItems appends items, in the order given, to the member's todo list.
func (g *Group) AddItems(user string, items ...string) error {
	id, err := g.memberID(user)
	if err != nil {
		return err
	}

	return g.store.table.AppendList(todo.Key{ID: id, Name: user}, todo.AttrTodo, items...)
}

// RemoveItems removes the todo entries at the given zero-based positions,
// all expressed against the list's current positions and applied in one
// update. Positions past the end of the list are no-ops, negative
// positions are not supported and skipped the same way.
func (g *Group) RemoveItems(user string, indices ...int) error {
	id, err := g.memberID(user)
	if err != nil {
		return err
	}

	return g.store.table.RemoveListIndices(todo.Key{ID: id, Name: user}, todo.AttrTodo, indices...)
}

// Members returns the member name to member id mapping of the group.
func (g *Group) Members() (map[string]string, error) {
	item, err := g.store.table.Get(g.key())
	if err != nil {
		return nil, err
	}

	members := make(map[string]string)
	if item == nil {
		return members, nil
	}

	for attr := range item {
		if attr == todo.AttrID || attr == todo.AttrName {
			continue
		}
		if id, ok := item.String(attr); ok {
			members[attr] = id
		}
	}

	return members, nil
}

// Items returns the member's todo list.
func (g *Group) Items(user string) ([]string, error) {
	id, err := g.memberID(user)
	if err != nil {
		return nil, err
	}

	member, err := g.store.table.Get(todo.Key{ID: id, Name: user})
	if err != nil {
		return nil, err
	}
	if member == nil {
		return []string{}, nil
	}

	return member.StringList(todo.AttrTodo), nil
}

// memberID resolves a member name to its id through the group record.
func (g *Group) memberID(name string) (string, error) {
	item, err := g.store.table.Get(g.key())
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", errMemberNotFound(name)
	}

	id, ok := item.String(name)
	if !ok {
		return "", errMemberNotFound(name)
	}

	return id, nil
}
