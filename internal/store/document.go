package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"leafdesk/internal/domain"
)

// Document is a dotted-path JSON document backed by a single file. It is the
// concrete implementation of domain.Store used by the app; the in-memory tree
// is the source of truth between writes and is flushed on every mutation.
type Document struct {
	path string

	mu   sync.Mutex
	data map[string]any
}

// Open loads the document at path, or starts an empty one if the file does
// not exist yet.
func Open(path string) (*Document, error) {
	d := &Document{path: path, data: map[string]any{}}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return d, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &d.data); err != nil {
		return nil, fmt.Errorf("store %s: %w", path, err)
	}
	return d, nil
}

// Get returns the decoded value at path, or nil if any segment is absent.
func (d *Document) Get(path string) any {
	d.mu.Lock()
	defer d.mu.Unlock()

	var cur any = d.data
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			cur = node[seg]
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			cur = node[i]
		default:
			return nil
		}
	}
	return cur
}

// Set writes value at path, creating intermediate objects as needed, and
// flushes the document. Values are normalised through JSON so the tree only
// ever holds generic maps, slices and scalars. Setting an array index equal
// to the array length appends.
func (d *Document) Set(path string, value any) error {
	norm, err := normalize(value)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	segs := strings.Split(path, ".")
	if err := setIn(d.data, segs, norm); err != nil {
		return fmt.Errorf("store set %s: %w", path, err)
	}
	return d.flush()
}

// Delete removes the value at path and flushes. Deleting an element of an
// array nulls the slot rather than shifting later elements, so indexes held
// elsewhere stay valid. Deleting an absent path is a no-op.
func (d *Document) Delete(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	segs := strings.Split(path, ".")
	parent := resolve(d.data, segs[:len(segs)-1])
	last := segs[len(segs)-1]

	switch node := parent.(type) {
	case map[string]any:
		if _, ok := node[last]; !ok {
			return nil
		}
		delete(node, last)
	case []any:
		i, err := strconv.Atoi(last)
		if err != nil || i < 0 || i >= len(node) {
			return nil
		}
		node[i] = nil
	default:
		return nil
	}
	return d.flush()
}

// resolve walks segs and returns the node they lead to, or nil.
func resolve(root map[string]any, segs []string) any {
	var cur any = root
	for _, seg := range segs {
		switch node := cur.(type) {
		case map[string]any:
			cur = node[seg]
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			cur = node[i]
		default:
			return nil
		}
	}
	return cur
}

func setIn(root map[string]any, segs []string, value any) error {
	if len(segs) == 1 {
		root[segs[0]] = value
		return nil
	}

	// Walk to the parent container, creating missing objects along the way.
	var cur any = root
	for depth, seg := range segs[:len(segs)-1] {
		switch node := cur.(type) {
		case map[string]any:
			child, ok := node[seg]
			if !ok || child == nil {
				child = map[string]any{}
				node[seg] = child
			}
			cur = child
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return fmt.Errorf("index %q out of range", seg)
			}
			if node[i] == nil {
				node[i] = map[string]any{}
			}
			cur = node[i]
		default:
			return fmt.Errorf("segment %q is not a container", segs[depth])
		}
	}

	last := segs[len(segs)-1]
	switch node := cur.(type) {
	case map[string]any:
		node[last] = value
		return nil
	case []any:
		i, err := strconv.Atoi(last)
		if err != nil || i < 0 || i > len(node) {
			return fmt.Errorf("index %q out of range", last)
		}
		if i == len(node) {
			// Append: the slice header changes, so rewrite the parent slot.
			return setIn(root, segs[:len(segs)-1], append(node, value))
		}
		node[i] = value
		return nil
	default:
		return fmt.Errorf("segment %q is not a container", segs[len(segs)-2])
	}
}

// normalize round-trips value through JSON so the tree holds only generic
// maps, slices and scalars regardless of the caller's concrete types.
func normalize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// flush writes the document via a temp file then rename. Callers hold d.mu.
func (d *Document) flush() error {
	b, err := json.MarshalIndent(d.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := d.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, d.path)
}

var _ domain.Store = (*Document)(nil)
