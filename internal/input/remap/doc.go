// Package remap resolves raw input events into application actions.
//
// A Remapper owns the registered contexts, the active-context stack, the
// per-action state store and the frame data of the last tick. Each tick the
// caller hands it every raw event collected since the previous tick:
//
//	r := remap.New[Action, ContextID](remap.WithWindowSize(1024, 768))
//	if err := r.RegisterAll(contexts...); err != nil {
//		return err
//	}
//	r.Activate(Default, 1)
//
//	for running {
//		for _, ev := range r.Process(poll()) {
//			if ev.IsClose() {
//				running = false
//			}
//		}
//	}
//
// Active contexts are scanned in ascending priority; the first binding that
// matches wins and at most one controller event is produced per raw event.
//
// State actions report Activated on the first press, Active while held
// (including key repeat) and Deactivated on release. The reported duration
// is measured from the activating press using event timestamps only.
//
// Range actions report the motion delta against the cursor position
// committed at the end of the previous tick. The CursorPosition argument
// reads that same committed cursor. Only Motion events move it.
package remap
