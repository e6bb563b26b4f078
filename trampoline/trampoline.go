package trampoline

import "errors"

// run is the trampoline: it repeatedly dispatches the current Message
// until it resolves a top-level Success or Failure, maintaining an
// explicit frameStack of suspended parents instead of recursing on
// the host stack. It implements both the uncached (§4.3) and cached
// (§4.4) variants from a single loop, branching only where the spec
// says they differ: the cache lookup when an Execute message is
// dispatched, and the cache write when a frame is popped.
//
// ExpiredContent errors returned by a handler are caught here and
// folded into FailureMessage (§4.3's "any raised ExpiredContent ... is
// caught and replaced with FAILURE"). ParserError and ConfigError are
// not caught: they abort the parse and propagate to the caller.
func run(cfg *Config, grammar Matcher) (Value, bool, error) {
	var stack frameStack

	current := NewExecute(nil, nil, grammar, Clean, cfg.Source.Start())
	traceStep(cfg, &stack, current)

	for {
		var (
			next Message
			err  error
		)

		switch current.Kind {
		case KindExecute:
			f := frame{parent: current.Parent, parentState: current.ParentState}

			if cfg.Options.Cache {
				f.key = cacheKey{matcher: current.Child.ID(), state: current.ChildState, iter: current.Iter}
				f.hasKey = true
				stack.push(f)

				if cached, hit := cfg.cache.get(f.key); hit {
					current = cached
					traceStep(cfg, &stack, current)
					continue
				}
			} else {
				stack.push(f)
			}

			next, err = current.Child.Execute(cfg, current.ChildState, current.Iter)

		case KindSuccess:
			f, _ := stack.pop()
			if f.hasKey {
				cfg.cache.put(f.key, current)
			}
			cfg.Source.Expire(current.Iter)
			if cfg.farthest.Less(current.Iter) {
				cfg.farthest = current.Iter
				cfg.expected = nil
			}

			if f.parent == nil {
				return current.Result, true, nil
			}
			next, err = f.parent.OnSuccess(cfg, f.parentState, current.ChildState, current.Iter, current.Result)

		case KindFailure:
			f, _ := stack.pop()
			if f.hasKey {
				cfg.cache.put(f.key, FailureMessage)
			}

			if f.parent == nil {
				return Value{}, false, nil
			}
			next, err = f.parent.OnFailure(cfg, f.parentState)

		default:
			return Value{}, false, &ConfigError{Message: "unknown message kind"}
		}

		if err != nil {
			if errors.Is(err, ErrExpiredContent) {
				next = FailureMessage
			} else {
				return Value{}, false, err
			}
		}

		current = next
		traceStep(cfg, &stack, current)
	}
}

func traceStep(cfg *Config, stack *frameStack, msg Message) {
	if cfg.Options.Trace == nil {
		return
	}
	// Success and Failure messages carry no parent of their own: the
	// parent they report to is the one in the frame about to be popped.
	parent := msg.Parent
	if msg.Kind != KindExecute {
		if n := stack.len(); n > 0 {
			parent = (*stack)[n-1].parent
		}
	}
	cfg.Options.Trace(TraceEvent{
		Kind:   msg.Kind,
		Depth:  stack.len(),
		Parent: parent,
		Child:  msg.Child,
		Iter:   msg.Iter,
		Result: msg.Result,
	})
}
