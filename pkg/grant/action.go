package grant

// Action is a coarse permission verb granted to a role. The set is closed:
// backend payloads may carry arbitrary strings, but anything outside this
// set is dropped during decoding rather than matched against.
type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionChange Action = "change"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
	ActionAdmin  Action = "admin"
)

// ParseAction maps a raw verb to an Action. The second return value is
// false for verbs outside the closed set.
func ParseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionView, ActionAdd, ActionChange, ActionDelete, ActionExport, ActionAdmin:
		return a, true
	default:
		return "", false
	}
}

// Valid reports whether the action belongs to the closed verb set.
func (a Action) Valid() bool {
	_, ok := ParseAction(string(a))
	return ok
}

// String returns the raw verb.
func (a Action) String() string {
	return string(a)
}

// parseActions converts raw verbs into Actions, silently dropping unknown
// entries. A nil result means the grant carries no usable verbs.
func parseActions(raw []string) []Action {
	if len(raw) == 0 {
		return nil
	}

	actions := make([]Action, 0, len(raw))
	for _, s := range raw {
		if a, ok := ParseAction(s); ok {
			actions = append(actions, a)
		}
	}

	if len(actions) == 0 {
		return nil
	}
	return actions
}
