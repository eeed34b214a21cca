package timeline

// Args is the ordered, heterogeneous argument list of an action.
type Args []any

// AddToArgs appends v to args and returns the resulting list, which is a new
// list when args was empty.
func AddToArgs(args Args, v any) Args {
	return append(args, v)
}

// DestroyArgs drops the list itself. The values are not released here; the
// action that allocated them does that in its PhaseDestroy branch.
func DestroyArgs(args Args) Args {
	clear(args)
	return nil
}

// Arg returns args[i] as T, or false when the index is out of range or the
// value has a different type.
func Arg[T any](args Args, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(args) {
		return zero, false
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, false
	}
	return v, true
}
