package viewcurve

import "fmt"

// Option holds a value that may be absent. The zero value is an empty option.
type Option[T comparable] struct {
	isSet bool
	value T
}

// Some returns an option holding v.
func Some[T comparable](v T) Option[T] {
	return Option[T]{isSet: true, value: v}
}

// None returns an empty option.
func None[T comparable]() Option[T] {
	return Option[T]{}
}

func (opt Option[T]) IsSet() bool {
	return opt.isSet
}

// Get returns the value and whether it is set.
func (opt Option[T]) Get() (T, bool) {
	return opt.value, opt.isSet
}

// Or returns the value if set and def otherwise.
func (opt Option[T]) Or(def T) T {
	if !opt.isSet {
		return def
	}
	return opt.value
}

// Unwrap returns the value, panicking if it isn't set.
func (opt Option[T]) Unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}

// Equal reports whether both options are empty, or both hold equal values.
func (opt Option[T]) Equal(o Option[T]) bool {
	if opt.isSet != o.isSet {
		return false
	}
	return !opt.isSet || opt.value == o.value
}

func (opt Option[T]) String() string {
	if !opt.isSet {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", opt.value)
}
