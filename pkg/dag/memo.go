package dag

import (
	"container/list"
	"encoding/json"
	"sync"

	"github.com/matzehuels/ganttline/pkg/cache"
	"github.com/matzehuels/ganttline/pkg/task"
)

// DefaultMemoSize is the number of graphs a [Memo] created with a
// non-positive capacity keeps.
const DefaultMemoSize = 8

// Memo caches built graphs keyed by a hash of their input, evicting the
// least recently used entry when full.
//
// The key covers every field of every task and dependency in the given
// order, so any structural change (and any reordering, which changes
// traversal order) yields a different key. Returned graphs are shared and
// must be treated as read-only, which the Graph API already guarantees.
type Memo struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List

	hits, misses int64
}

type memoEntry struct {
	key   string
	graph *Graph
}

// NewMemo creates a memo holding at most capacity graphs.
func NewMemo(capacity int) *Memo {
	if capacity <= 0 {
		capacity = DefaultMemoSize
	}
	return &Memo{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

// Graph returns the graph for tasks and deps, building it on a miss.
// A nil Memo always builds.
func (m *Memo) Graph(tasks []task.Task, deps []task.Dependency) *Graph {
	if m == nil {
		return New(tasks, deps)
	}
	key, err := Key(tasks, deps)
	if err != nil {
		return New(tasks, deps)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		m.hits++
		m.order.MoveToFront(elem)
		return elem.Value.(*memoEntry).graph
	}
	m.misses++

	g := New(tasks, deps)
	m.items[key] = m.order.PushFront(&memoEntry{key: key, graph: g})
	if m.order.Len() > m.capacity {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.items, oldest.Value.(*memoEntry).key)
	}
	return g
}

// Len returns the number of cached graphs.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// Stats returns the hit and miss counts since creation.
func (m *Memo) Stats() (hits, misses int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}

// Key returns the input hash used by [Memo].
func Key(tasks []task.Task, deps []task.Dependency) (string, error) {
	data, err := json.Marshal(task.Schedule{Tasks: tasks, Dependencies: deps})
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
