package statebox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/statebox"
)

type (
	payloadAction struct {
		Payload int
	}

	appState struct {
		A     int
		B     int
		Extra string
	}

	textState struct {
		Text string
	}

	shapeState struct {
		Count *countState
		Text  *textState
	}
)

var (
	fieldA = func(s appState) int { return s.A }
	fieldB = func(s appState) int { return s.B }
	setA   = func(s appState, v int) appState { s.A = v; return s }
	setB   = func(s appState, v int) appState { s.B = v; return s }
)

func TestCombine(t *testing.T) {
	t.Run("builds default state from zero input", func(t *testing.T) {
		reducer := statebox.Combine(
			statebox.Field(
				func(s shapeState) *countState { return s.Count },
				func(s shapeState, v *countState) shapeState {
					s.Count = v
					return s
				},
				func(s *countState, _ payloadAction) *countState {
					if s == nil {
						return &countState{Count: 2}
					}
					return s
				},
			),
			statebox.Field(
				func(s shapeState) *textState { return s.Text },
				func(s shapeState, v *textState) shapeState {
					s.Text = v
					return s
				},
				func(s *textState, _ payloadAction) *textState {
					if s == nil {
						return &textState{Text: "hop"}
					}
					return s
				},
			),
		)

		res := reducer(shapeState{}, payloadAction{})
		assert.Equal(t, &countState{Count: 2}, res.Count)
		assert.Equal(t, &textState{Text: "hop"}, res.Text)
	})

	t.Run("calls slice reducers with their slice", func(t *testing.T) {
		var seenA, seenB []int
		reducer := statebox.Combine(
			statebox.Field(fieldA, setA,
				func(s int, a payloadAction) int {
					seenA = append(seenA, s)
					return s + a.Payload
				},
			),
			statebox.Field(fieldB, setB,
				func(s int, a payloadAction) int {
					seenB = append(seenB, s)
					return s - a.Payload
				},
			),
		)

		s1 := reducer(appState{A: 55, B: 66}, payloadAction{Payload: 1})
		assert.Equal(t, appState{A: 56, B: 65}, s1)

		s2 := reducer(s1, payloadAction{Payload: 2})
		assert.Equal(t, appState{A: 58, B: 63}, s2)

		assert.Equal(t, []int{55, 56}, seenA)
		assert.Equal(t, []int{66, 65}, seenB)
	})

	t.Run("drops unbound fields", func(t *testing.T) {
		reducer := statebox.Combine(
			statebox.Field(fieldA, setA,
				func(s int, _ payloadAction) int { return s },
			),
		)
		res := reducer(appState{A: 1, B: 2, Extra: "x"}, payloadAction{})
		assert.Equal(t, appState{A: 1}, res)
	})

	t.Run("runs slices in order", func(t *testing.T) {
		var order []string
		reducer := statebox.Combine(
			statebox.Field(fieldB, setB,
				func(s int, _ payloadAction) int {
					order = append(order, "b")
					return s
				},
			),
			statebox.Field(fieldA, setA,
				func(s int, _ payloadAction) int {
					order = append(order, "a")
					return s
				},
			),
		)
		reducer(appState{}, payloadAction{})
		assert.Equal(t, []string{"b", "a"}, order)
	})

	t.Run("empty combination returns zero state", func(t *testing.T) {
		reducer := statebox.Combine[appState, payloadAction]()
		res := reducer(appState{A: 1, B: 2, Extra: "x"}, payloadAction{})
		assert.Equal(t, appState{}, res)
	})

	t.Run("drives a store", func(t *testing.T) {
		reducer := statebox.Combine(
			statebox.Field(fieldA, setA,
				func(s int, a payloadAction) int { return s + a.Payload },
			),
			statebox.Field(fieldB, setB,
				func(s int, a payloadAction) int { return s + 2*a.Payload },
			),
		)
		store := statebox.NewStore(reducer)
		store.Dispatch(payloadAction{Payload: 1})
		store.Dispatch(payloadAction{Payload: 2})
		assert.Equal(t, appState{A: 3, B: 6}, store.GetState())
	})
}

func TestCombineMap(t *testing.T) {
	withDefault := func(def int) statebox.Reducer[int, payloadAction] {
		return func(s int, a payloadAction) int {
			if s == 0 {
				s = def
			}
			return s + a.Payload
		}
	}

	t.Run("empty config yields empty map", func(t *testing.T) {
		reducer := statebox.CombineMap[int, payloadAction]()

		res := reducer(map[string]int{"a": 1}, payloadAction{Payload: 3})
		assert.NotNil(t, res)
		assert.Empty(t, res)

		res = reducer(nil, payloadAction{})
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("nil state reaches every slice as zero", func(t *testing.T) {
		reducer := statebox.CombineMap(
			statebox.Key("a", withDefault(5)),
			statebox.Key("b", withDefault(6)),
		)
		res := reducer(nil, payloadAction{Payload: 1})
		assert.Equal(t, map[string]int{"a": 6, "b": 7}, res)
	})

	t.Run("keeps only configured keys", func(t *testing.T) {
		reducer := statebox.CombineMap(
			statebox.Key("a", withDefault(5)),
		)
		in := map[string]int{"a": 10, "z": 99}
		res := reducer(in, payloadAction{Payload: 1})
		assert.Equal(t, map[string]int{"a": 11}, res)
		assert.Equal(t, map[string]int{"a": 10, "z": 99}, in)
	})

	t.Run("runs keys in order", func(t *testing.T) {
		var order []string
		track := func(name string) statebox.KeyReducer[int, payloadAction] {
			return statebox.Key(name, func(s int, _ payloadAction) int {
				order = append(order, name)
				return s
			})
		}
		reducer := statebox.CombineMap(track("z"), track("a"), track("m"))
		reducer(nil, payloadAction{})
		assert.Equal(t, []string{"z", "a", "m"}, order)
	})

	t.Run("returns a new map every call", func(t *testing.T) {
		reducer := statebox.CombineMap(
			statebox.Key("a", func(s int, _ payloadAction) int { return s }),
		)
		in := map[string]int{"a": 1}
		res := reducer(in, payloadAction{})
		res["a"] = 100
		assert.Equal(t, 1, in["a"])
	})

	t.Run("exposes key names", func(t *testing.T) {
		k := statebox.Key("count", withDefault(0))
		assert.Equal(t, "count", k.Name())
	})
}
