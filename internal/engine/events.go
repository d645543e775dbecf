package engine

import "go.uber.org/zap"

// OnChange registers fn to run synchronously after every successful
// mutation, including undo and redo.
func (d *Document) OnChange(fn func()) {
	if fn != nil {
		d.changeFns = append(d.changeFns, fn)
	}
}

// OnSelectionChange registers fn to run synchronously after every
// explicit selection change and cursor movement.
func (d *Document) OnSelectionChange(fn func()) {
	if fn != nil {
		d.selectionFns = append(d.selectionFns, fn)
	}
}

func (d *Document) notifyChange() {
	for _, fn := range d.changeFns {
		d.safeCall(fn)
	}
}

func (d *Document) notifySelection() {
	for _, fn := range d.selectionFns {
		d.safeCall(fn)
	}
}

// safeCall isolates callback panics so one failing callback cannot
// corrupt document state or starve the callbacks after it.
func (d *Document) safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Warn("callback panicked", zap.Any("panic", r))
		}
	}()
	fn()
}
