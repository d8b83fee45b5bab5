// Package viewstate models the fetch lifecycle of a view as a tagged
// union so rendering can be a total function of the tag instead of a
// tangle of loading and error flags.
package viewstate

// Tag identifies which variant a State holds.
type Tag int

const (
	TagIdle Tag = iota
	TagLoading
	TagLoaded
	TagFailed
)

// State is one of Idle, Loading, Loaded(data) or Failed(err).
type State[T any] struct {
	tag  Tag
	data T
	err  error
}

// Idle is the state before any fetch has been issued.
func Idle[T any]() State[T] {
	return State[T]{tag: TagIdle}
}

// Loading is the state while a fetch is in flight.
func Loading[T any]() State[T] {
	return State[T]{tag: TagLoading}
}

// Loaded wraps a successfully fetched value.
func Loaded[T any](data T) State[T] {
	return State[T]{tag: TagLoaded, data: data}
}

// Failed wraps the error of a failed fetch.
func Failed[T any](err error) State[T] {
	return State[T]{tag: TagFailed, err: err}
}

// Tag returns the variant tag.
func (s State[T]) Tag() Tag { return s.tag }

// Data returns the loaded value, or the zero value for any other tag.
func (s State[T]) Data() T { return s.data }

// Err returns the failure, or nil for any other tag.
func (s State[T]) Err() error { return s.err }

func (s State[T]) IsLoaded() bool { return s.tag == TagLoaded }

func (s State[T]) IsFailed() bool { return s.tag == TagFailed }

// ErrMessage is Err rendered for templates; empty unless failed.
func (s State[T]) ErrMessage() string {
	if s.err == nil {
		return ""
	}
	return s.err.Error()
}
