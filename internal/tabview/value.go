package tabview

import (
	"math"
	"sync"
	"sync/atomic"
)

// Value is a continuously updated scalar. Pagers write it from the gesture
// stream; normalizers read it at any time without going through Update.
// Reads never tear: the float is stored as its bit pattern in one word.
type Value struct {
	bits atomic.Uint64

	mu        sync.Mutex
	listeners map[uint64]func(float64)
	nextID    uint64
}

// NewValue creates a value holding v
func NewValue(v float64) *Value {
	val := &Value{listeners: make(map[uint64]func(float64))}
	val.bits.Store(math.Float64bits(v))
	return val
}

// Get returns the latest value
func (v *Value) Get() float64 {
	return math.Float64frombits(v.bits.Load())
}

// Set stores x and notifies listeners synchronously
func (v *Value) Set(x float64) {
	v.bits.Store(math.Float64bits(x))

	v.mu.Lock()
	fns := make([]func(float64), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(x)
	}
}

// Store updates the value without notifying listeners. Pagers use it for
// the first of two fields that change together, so listeners observe the
// pair only once.
func (v *Value) Store(x float64) {
	v.bits.Store(math.Float64bits(x))
}

// AddListener registers fn for every Set. The returned func removes it.
func (v *Value) AddListener(fn func(float64)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.nextID++
	id := v.nextID
	v.listeners[id] = fn
	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}
