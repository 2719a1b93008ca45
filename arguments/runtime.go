package arguments

// RuntimeData holds introspectable data about a variant or flag: its
// canonical name, the aliases that resolve to it, a human-readable
// description, and the names of the argument types it takes, in order.
// Intended for GUI/help-text consumers, not for parsing itself.
type RuntimeData[Name any] struct {
	Name        Name
	Aliases     []string
	Description string
	Arguments   []string
}
