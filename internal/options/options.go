// Package options implements generic functional-option application shared
// by the module's configurable constructors.
package options

// OptionConstructor produces the default option set. A nil constructor
// stands for the zero value.
type OptionConstructor[T any] func() T

// OptionCallback mutates one option of the set.
type OptionCallback[T any] func(*T)

// ApplyOptions builds the option set: defaults from the constructor, then
// every callback in order.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		cb(&opts)
	}

	return opts
}
