package trampoline

// MessageKind tags the three shapes a Message can take.
type MessageKind int

const (
	// KindExecute requests that the trampoline dispatch into Child
	// at ChildState/Iter, suspending Parent/ParentState until it
	// reports back.
	KindExecute MessageKind = iota

	// KindSuccess reports that whichever matcher emitted it has
	// produced Result, ending at Iter, having reached ChildState.
	KindSuccess

	// KindFailure is the singleton "no match" outcome. It carries
	// no data: farthest-failure tracking lives on Config, not on
	// the message, exactly as the original engine tracks it on the
	// parser rather than on the failure value itself.
	KindFailure
)

// Message is the inter-matcher dispatch carrier returned by every
// Matcher protocol handler.
type Message struct {
	Kind MessageKind

	// Execute fields.
	Parent      Matcher
	ParentState State
	Child       Matcher
	ChildState  State
	Iter        Iter

	// Success fields (ChildState and Iter above double as Success's
	// own child_state/iter per §3).
	Result Value
}

// FailureMessage is the singleton FAILURE message.
var FailureMessage = Message{Kind: KindFailure}

// NewExecute builds an Execute message delegating from parent (at
// parentState) to child (at childState), at cursor iter.
func NewExecute(parent Matcher, parentState State, child Matcher, childState State, iter Iter) Message {
	return Message{
		Kind:        KindExecute,
		Parent:      parent,
		ParentState: parentState,
		Child:       child,
		ChildState:  childState,
		Iter:        iter,
	}
}

// NewSuccess builds a Success message reporting that the emitting
// matcher reached childState at iter, producing result.
func NewSuccess(childState State, iter Iter, result Value) Message {
	return Message{
		Kind:       KindSuccess,
		ChildState: childState,
		Iter:       iter,
		Result:     result,
	}
}
