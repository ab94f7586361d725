package statebox

type (
	// Slice binds one field of a composite state S to the Reducer that owns
	// it. It reads the field from the previous state and writes the reduced
	// value into the composite being built
	Slice[S, A any] func(prev, next S, action A) S

	// KeyReducer names the Reducer that owns one key of a keyed state
	KeyReducer[T, A any] struct {
		name    string
		reducer Reducer[T, A]
	}
)

// Field creates a Slice from a field accessor pair and the Reducer that owns
// the field. get must tolerate the zero value of S, which is how an
// uninitialized composite state is presented
func Field[S, T, A any](
	get func(S) T, set func(S, T) S, r Reducer[T, A],
) Slice[S, A] {
	return func(prev, next S, action A) S {
		return set(next, r(get(prev), action))
	}
}

// Combine builds a Reducer over a composite struct state from its Slices.
// Every call starts from a fresh zero S, so fields not bound by a Slice never
// carry over from the input. Slices run in the order given
func Combine[S, A any](parts ...Slice[S, A]) Reducer[S, A] {
	return func(state S, action A) S {
		var res S
		for _, part := range parts {
			res = part(state, res, action)
		}
		return res
	}
}

// Key creates a KeyReducer
func Key[T, A any](name string, r Reducer[T, A]) KeyReducer[T, A] {
	return KeyReducer[T, A]{
		name:    name,
		reducer: r,
	}
}

// Name returns the state key owned by the KeyReducer
func (k KeyReducer[_, _]) Name() string {
	return k.name
}

// CombineMap builds a Reducer over a keyed state. The result is always a new
// map holding exactly the configured keys. A nil input map presents the zero
// value of T to every KeyReducer
func CombineMap[T, A any](keys ...KeyReducer[T, A]) Reducer[map[string]T, A] {
	return func(state map[string]T, action A) map[string]T {
		res := make(map[string]T, len(keys))
		for _, k := range keys {
			res[k.name] = k.reducer(state[k.name], action)
		}
		return res
	}
}
