package group

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadsaad58/todo/errors"
	"github.com/ahmadsaad58/todo/index"
	"github.com/ahmadsaad58/todo/inmem"
	"github.com/ahmadsaad58/todo/log"
)

func createStore(t *testing.T) (*Store, *inmem.Table, func()) {
	dir, err := ioutil.TempDir("", "")
	if err != nil {
		t.Fatal("could not create tmp dir:", err)
	}

	idx, err := index.Load(filepath.Join(dir, "groups.json"))
	if err != nil {
		os.RemoveAll(dir)
		t.Fatal("could not load index:", err)
	}

	table := inmem.NewTable()
	store := NewStore(table, idx, log.New("test"))

	return store, table, func() { os.RemoveAll(dir) }
}

func TestStore_CreateGroup(t *testing.T) {
	store, _, f := createStore(t)
	defer f()

	id, err := store.CreateGroup("family")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// the index now resolves the name to the same stable id
	g, err := store.Group("family")
	require.NoError(t, err)
	assert.Equal(t, id, g.ID())

	// creating the same name again is a conflict
	_, err = store.CreateGroup("family")
	require.Error(t, err)
	errors.AssertCode(t, err, 409)
}

func TestStore_ResolveOrCreate(t *testing.T) {
	store, _, f := createStore(t)
	defer f()

	id, err := store.ResolveOrCreate("family")
	require.NoError(t, err)

	again, err := store.ResolveOrCreate("family")
	require.NoError(t, err)
	assert.Equal(t, id, again, "resolving an existing name should not mint a new id")
}

func TestStore_Group_NotFound(t *testing.T) {
	store, _, f := createStore(t)
	defer f()

	_, err := store.Group("nope")
	require.Error(t, err)
	errors.AssertCode(t, err, 404)
}

func TestGroup_AddUser(t *testing.T) {
	store, table, f := createStore(t)
	defer f()

	_, err := store.CreateGroup("family")
	require.NoError(t, err)
	g, err := store.Group("family")
	require.NoError(t, err)

	require.NoError(t, g.AddUser("alice"))
	records := table.Size()

	// a second add of the same name is a conflict and writes nothing
	err = g.AddUser("alice")
	require.Error(t, err)
	errors.AssertCode(t, err, 409)
	assert.Equal(t, records, table.Size(), "failed add should not create a member record")

	members, err := g.Members()
	require.NoError(t, err)
	require.Contains(t, members, "alice")
}

func TestGroup_RemoveUser(t *testing.T) {
	store, table, f := createStore(t)
	defer f()

	_, err := store.CreateGroup("family")
	require.NoError(t, err)
	g, err := store.Group("family")
	require.NoError(t, err)

	// removing a non-member mutates nothing
	before := table.Size()
	err = g.RemoveUser("alice")
	require.Error(t, err)
	errors.AssertCode(t, err, 404)
	assert.Equal(t, before, table.Size())

	require.NoError(t, g.AddUser("alice"))
	require.NoError(t, g.RemoveUser("alice"))

	members, err := g.Members()
	require.NoError(t, err)
	assert.NotContains(t, members, "alice")

	// the name is reusable after removal
	require.NoError(t, g.AddUser("alice"))
}

func TestGroup_AddItems(t *testing.T) {
	store, _, f := createStore(t)
	defer f()

	_, err := store.CreateGroup("family")
	require.NoError(t, err)
	g, err := store.Group("family")
	require.NoError(t, err)
	require.NoError(t, g.AddUser("alice"))

	require.NoError(t, g.AddItems("alice", "a", "b"))
	require.NoError(t, g.AddItems("alice", "c"))

	items, err := g.Items("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items, "append should be order-preserving and cumulative")

	// unknown member
	err = g.AddItems("bob", "x")
	require.Error(t, err)
	errors.AssertCode(t, err, 404)
}

func TestGroup_RemoveItems(t *testing.T) {
	store, _, f := createStore(t)
	defer f()

	_, err := store.CreateGroup("family")
	require.NoError(t, err)
	g, err := store.Group("family")
	require.NoError(t, err)
	require.NoError(t, g.AddUser("alice"))
	require.NoError(t, g.AddItems("alice", "a", "b", "c"))

	require.NoError(t, g.RemoveItems("alice", 0))

	items, err := g.Items("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, items)

	// positions past the end are no-ops
	require.NoError(t, g.RemoveItems("alice", 10))
	items, err = g.Items("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, items)

	err = g.RemoveItems("bob", 0)
	require.Error(t, err)
	errors.AssertCode(t, err, 404)
}

func TestGroup_Delete(t *testing.T) {
	store, table, f := createStore(t)
	defer f()

	id, err := store.CreateGroup("family")
	require.NoError(t, err)
	g, err := store.Group("family")
	require.NoError(t, err)
	require.NoError(t, g.AddUser("alice"))
	require.NoError(t, g.AddUser("bob"))

	require.NoError(t, g.Delete())
	assert.Equal(t, 0, table.Size(), "group and member records should all be gone")

	_, err = store.Group("family")
	require.Error(t, err)
	errors.AssertCode(t, err, 404)

	// the name is free again and gets a fresh id
	newID, err := store.CreateGroup("family")
	require.NoError(t, err)
	assert.NotEqual(t, id, newID)
}
