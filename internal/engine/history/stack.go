package history

// DefaultCapacity bounds the undo stack unless configured otherwise.
const DefaultCapacity = 100

// Stack is the two-stack undo/redo history. Executing a new command
// always clears the redo stack; pushing past capacity evicts the oldest
// undo entry silently.
type Stack struct {
	undo     []*Command
	redo     []*Command
	capacity int
}

// NewStack returns a history bounded to capacity entries. A
// non-positive capacity means DefaultCapacity.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{capacity: capacity}
}

// Execute runs cmd against t and records it for undo on success.
func (s *Stack) Execute(cmd *Command, t Target) error {
	if err := cmd.Execute(t); err != nil {
		return err
	}
	s.redo = s.redo[:0]
	s.push(cmd)
	return nil
}

// Undo reverses the most recent command and moves it to the redo stack.
func (s *Stack) Undo(t Target) error {
	if len(s.undo) == 0 {
		return ErrNothingToUndo
	}
	cmd := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	if err := cmd.Undo(t); err != nil {
		s.undo = append(s.undo, cmd)
		return err
	}
	s.redo = append(s.redo, cmd)
	return nil
}

// Redo re-executes the most recently undone command.
func (s *Stack) Redo(t Target) error {
	if len(s.redo) == 0 {
		return ErrNothingToRedo
	}
	cmd := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	if err := cmd.Execute(t); err != nil {
		s.redo = append(s.redo, cmd)
		return err
	}
	s.push(cmd)
	return nil
}

func (s *Stack) push(cmd *Command) {
	s.undo = append(s.undo, cmd)
	if excess := len(s.undo) - s.capacity; excess > 0 {
		s.undo = s.undo[excess:]
	}
}

func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// UndoDepth returns the number of undoable commands.
func (s *Stack) UndoDepth() int { return len(s.undo) }

// RedoDepth returns the number of redoable commands.
func (s *Stack) RedoDepth() int { return len(s.redo) }

// Capacity returns the current undo bound.
func (s *Stack) Capacity() int { return s.capacity }

// SetCapacity changes the bound, evicting the oldest undo entries
// immediately when the stack already exceeds it.
func (s *Stack) SetCapacity(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s.capacity = capacity
	if excess := len(s.undo) - s.capacity; excess > 0 {
		s.undo = s.undo[excess:]
	}
}

// Clear drops both stacks.
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
}
