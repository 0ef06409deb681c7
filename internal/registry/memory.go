// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"slices"
	"strings"
	"sync"
)

type (
	// Memory is an in-memory registry tree. Key paths and value names are
	// case-insensitive, matching the Windows registry.
	Memory struct {
		mu   sync.RWMutex
		keys map[string]*memKey
	}

	memKey struct {
		children []string
		values   map[string]string
	}
)

// NewMemory creates an empty in-memory registry.
func NewMemory() *Memory {
	return &Memory{keys: make(map[string]*memKey)}
}

// Set stores a string value, creating the key and its parents as needed.
func (m *Memory) Set(root Root, path, name, value string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := m.ensure(root, path)
	k.values[strings.ToLower(name)] = value
	return m
}

// AddKey creates an empty key (and its parents).
func (m *Memory) AddKey(root Root, path string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensure(root, path)
	return m
}

// SubKeys lists child key names in insertion order.
func (m *Memory) SubKeys(root Root, path string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	k, ok := m.keys[memID(root, path)]
	if !ok {
		return nil, &KeyError{Root: root, Path: path, Err: ErrNotExist}
	}
	return slices.Clone(k.children), nil
}

// String reads a value.
func (m *Memory) String(root Root, path, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	k, ok := m.keys[memID(root, path)]
	if !ok {
		return "", &KeyError{Root: root, Path: path, Value: name, Err: ErrNotExist}
	}
	v, ok := k.values[strings.ToLower(name)]
	if !ok {
		return "", &KeyError{Root: root, Path: path, Value: name, Err: ErrNotExist}
	}
	return v, nil
}

// ensure must be called with mu held.
func (m *Memory) ensure(root Root, path string) *memKey {
	id := memID(root, path)
	if k, ok := m.keys[id]; ok {
		return k
	}
	k := &memKey{values: make(map[string]string)}
	m.keys[id] = k

	parent, child, found := cutLast(path)
	if found {
		p := m.ensure(root, parent)
		p.children = append(p.children, child)
	}
	return k
}

func memID(root Root, path string) string {
	return root.String() + `\` + strings.ToLower(strings.Trim(path, `\`))
}

func cutLast(path string) (parent, child string, found bool) {
	path = strings.Trim(path, `\`)
	i := strings.LastIndex(path, `\`)
	if i < 0 {
		return "", "", false
	}
	return path[:i], path[i+1:], true
}
