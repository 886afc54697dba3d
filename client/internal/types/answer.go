package types

import (
	"encoding/json"
	"fmt"
)

type answerKind uint8

const (
	answerNull answerKind = iota
	answerText
	answerNumber
	answerBool
	answerChoices
)

// Answer is the value submitted for a question. It serialises as a bare JSON
// string, number, boolean or array of strings. The zero Answer is null.
type Answer struct {
	kind    answerKind
	text    string
	number  float64
	boolean bool
	choices []string
}

// TextAnswer is a free-form or single-option answer.
func TextAnswer(s string) Answer { return Answer{kind: answerText, text: s} }

// NumberAnswer is a numeric answer.
func NumberAnswer(f float64) Answer { return Answer{kind: answerNumber, number: f} }

// BoolAnswer is a yes/no answer.
func BoolAnswer(b bool) Answer { return Answer{kind: answerBool, boolean: b} }

// ChoicesAnswer selects several options.
func ChoicesAnswer(choices ...string) Answer {
	return Answer{kind: answerChoices, choices: append([]string{}, choices...)}
}

// IsZero reports whether no value was set.
func (a Answer) IsZero() bool { return a.kind == answerNull }

// String renders the answer for logs.
func (a Answer) String() string {
	switch a.kind {
	case answerText:
		return a.text
	case answerNumber:
		return fmt.Sprintf("%g", a.number)
	case answerBool:
		return fmt.Sprintf("%t", a.boolean)
	case answerChoices:
		return fmt.Sprintf("%v", a.choices)
	default:
		return "<null>"
	}
}

// MarshalJSON implements json.Marshaler.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case answerText:
		return json.Marshal(a.text)
	case answerNumber:
		return json.Marshal(a.number)
	case answerBool:
		return json.Marshal(a.boolean)
	case answerChoices:
		return json.Marshal(a.choices)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Answer) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*a = Answer{}
	case string:
		*a = TextAnswer(t)
	case float64:
		*a = NumberAnswer(t)
	case bool:
		*a = BoolAnswer(t)
	case []any:
		choices := make([]string, 0, len(t))
		for _, c := range t {
			s, ok := c.(string)
			if !ok {
				return fmt.Errorf("answer: choice %v is not a string", c)
			}
			choices = append(choices, s)
		}
		*a = ChoicesAnswer(choices...)
	default:
		return fmt.Errorf("answer: unsupported JSON value %s", string(b))
	}
	return nil
}
