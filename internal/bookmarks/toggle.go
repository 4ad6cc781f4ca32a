// Package bookmarks manages per-user recipe bookmarks.
package bookmarks

// ToggleAction is the remote call a toggle transition requires.
type ToggleAction int

const (
	// ActionNone means the state already matches; nothing to do.
	ActionNone ToggleAction = iota
	// ActionAdd means the bookmark must be created remotely.
	ActionAdd
	// ActionRemove means the bookmark must be deleted remotely.
	ActionRemove
)

// Transition is the result of an optimistic bookmark toggle: the state to
// show immediately, the remote action to confirm it, and the state to
// restore when that action fails.
type Transition struct {
	Next     bool
	Action   ToggleAction
	Rollback bool
}

// Toggle computes the optimistic transition from the current bookmark
// state to the desired one. It is pure so the optimistic-update flow can
// be tested without a store.
func Toggle(current, desired bool) Transition {
	if current == desired {
		return Transition{Next: current, Action: ActionNone, Rollback: current}
	}
	action := ActionRemove
	if desired {
		action = ActionAdd
	}
	return Transition{Next: desired, Action: action, Rollback: current}
}
