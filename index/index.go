package index

import (
	"encoding/json"
	"io/ioutil"
	"os"
)

// File is the local lookup table from group name to group id. The whole
// file is read on load and rewritten on every save. It is shared mutable
// state with no locking around the read-modify-write cycle: concurrent
// processes racing on it lose updates, last writer wins.
type File struct {
	path string
	ids  map[string]string
}

// Load reads the mapping from path. A missing or empty file loads as an
// empty mapping so a fresh deployment can create its first group.
func Load(path string) (*File, error) {
	f := &File{
		path: path,
		ids:  make(map[string]string),
	}

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	} else if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return f, nil
	}

	if err := json.Unmarshal(data, &f.ids); err != nil {
		return nil, err
	}
	return f, nil
}

// Get returns the id mapped to name.
func (f *File) Get(name string) (string, bool) {
	id, ok := f.ids[name]
	return id, ok
}

// Put maps name to id in memory. Call Save to persist.
func (f *File) Put(name, id string) {
	f.ids[name] = id
}

// Remove drops name from the mapping in memory. Call Save to persist.
func (f *File) Remove(name string) {
	delete(f.ids, name)
}

// Save rewrites the whole file with the current mapping.
func (f *File) Save() error {
	data, err := json.Marshal(f.ids)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(f.path, data, 0644)
}
