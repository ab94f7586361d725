package statebox

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

type (
	// ActionType discriminates conventional Actions
	ActionType string

	// Action is the conventional action record: a discriminator plus an
	// optional JSON payload. The Store itself accepts any action type
	Action struct {
		Type    ActionType      `json:"type"`
		Payload json.RawMessage `json:"payload,omitempty"`
	}

	// Typed is implemented by actions that can report their own ActionType
	Typed interface {
		ActionType() ActionType
	}

	// Handlers maps ActionTypes to the Reducers that handle them
	Handlers[S any] map[ActionType]Reducer[S, Action]
)

// NewAction marshals the payload and returns an Action of the given type
func NewAction(typ ActionType, payload any) (Action, error) {
	if payload == nil {
		return Action{Type: typ}, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Action{}, err
	}
	return Action{
		Type:    typ,
		Payload: data,
	}, nil
}

// ParseAction reads an Action from a raw JSON object. The object must carry a
// string "type" member; the "payload" member is optional
func ParseAction(raw []byte) (Action, error) {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return Action{}, ErrActionMalformed
	}
	typ := gjson.GetBytes(raw, "type")
	if typ.Type != gjson.String {
		return Action{}, ErrActionMalformed
	}
	res := Action{Type: ActionType(typ.Str)}
	if p := gjson.GetBytes(raw, "payload"); p.Exists() {
		res.Payload = json.RawMessage(p.Raw)
	}
	return res, nil
}

// ActionType implements Typed
func (a Action) ActionType() ActionType {
	return a.Type
}

// MakeReducer decodes the Action payload into Data before calling fn. An
// Action whose payload cannot be decoded leaves the state unchanged
func MakeReducer[S, Data any](fn func(S, Action, Data) S) Reducer[S, Action] {
	return func(state S, action Action) S {
		var data Data
		if len(action.Payload) > 0 {
			if err := json.Unmarshal(action.Payload, &data); err != nil {
				return state
			}
		}
		return fn(state, action, data)
	}
}

// HandleActions routes each Action to the Reducer registered for its type.
// Unknown types return the state unchanged. Because the zero state is passed
// through for unknown types, a Reducer built this way should be paired with
// an explicit initial state
func HandleActions[S any](h Handlers[S]) Reducer[S, Action] {
	return func(state S, action Action) S {
		if fn, ok := h[action.Type]; ok {
			return fn(state, action)
		}
		return state
	}
}

// TypeOf returns a printable discriminator for any action value, used for
// logging and metric labels
func TypeOf(action any) string {
	switch a := action.(type) {
	case nil:
		return "<nil>"
	case *Action:
		if a == nil {
			return "<nil>"
		}
		return string(a.Type)
	case Typed:
		return string(a.ActionType())
	case string:
		return a
	case fmt.Stringer:
		return a.String()
	default:
		return fmt.Sprintf("%T", action)
	}
}
