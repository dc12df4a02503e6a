package core

import (
	"strconv"
	"strings"
)

// Action is a menu command of the notes tool.
type Action int

const (
	ActionCreate Action = iota + 1
	ActionDisplay
	ActionUpdate
	ActionDelete
	ActionQuit
)

var actionNames = map[Action]string{
	ActionCreate:  "Create",
	ActionDisplay: "Display",
	ActionUpdate:  "Update",
	ActionDelete:  "Delete",
	ActionQuit:    "Quit",
}

// String implements fmt.Stringer.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Action(" + strconv.Itoa(int(a)) + ")"
}

// Valid reports whether a is one of the five known actions.
func (a Action) Valid() bool {
	return a >= ActionCreate && a <= ActionQuit
}

// ParseAction converts the menu number typed by the user into an Action.
func ParseAction(s string) (Action, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotANumber
	}
	a := Action(n)
	if !a.Valid() {
		return 0, ErrActionRange
	}
	return a, nil
}
