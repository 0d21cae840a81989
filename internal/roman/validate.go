// validate.go implements the standard-form validator as an explicit state
// machine.
//
// The scan is a fold of step over the positions of the candidate. step is
// pure: it receives the state left behind by the previous position and a
// window of neighbouring symbol values, and returns the next state or a
// rejection reason. Keeping every rule in step lets each one be exercised on
// its own.

package roman

// reason says why a position was rejected. The zero value accepts.
type reason uint8

const (
	accept reason = iota
	rejectUnknownSymbol
	rejectSingleRepeated
	rejectRunTooLong
	rejectIllegalPair
	rejectChainedSubtraction
	rejectAboveCeiling
	rejectReusedSubtrahend
	rejectDoubleSubtraction
	rejectTrailingSubtraction
)

var reasonNames = [...]string{
	accept:                    "accept",
	rejectUnknownSymbol:       "unknown symbol",
	rejectSingleRepeated:      "V, L or D repeated",
	rejectRunTooLong:          "run too long",
	rejectIllegalPair:         "illegal subtractive pair",
	rejectChainedSubtraction:  "chained subtraction",
	rejectAboveCeiling:        "above ceiling",
	rejectReusedSubtrahend:    "subtrahend reused",
	rejectDoubleSubtraction:   "double subtraction",
	rejectTrailingSubtraction: "trailing subtraction",
}

func (r reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown reason"
}

// state is the validator's memory between positions. It lives for one call.
type state struct {
	repeat  int   // length of the current run of equal symbols
	ceiling int   // largest value the next comparison may involve; never grows
	lastSub int   // smaller half of the last subtractive pair, 0 if none
	inSub   bool  // the previous comparison formed a subtractive pair
	seen    uint8 // bits from single for V, L, D already consumed
}

func newState() state {
	return state{repeat: 1, ceiling: 1000}
}

// window holds the symbol values around the current position. A zero
// neighbour is absent: prev is 0 only at the first position, prev2 only at
// the first two, next only at the last.
type window struct {
	prev2, prev, cur, next int
}

func windowAt(s string, i int) window {
	w := window{cur: Value(s[i])}
	if i > 0 {
		w.prev = Value(s[i-1])
	}
	if i > 1 {
		w.prev2 = Value(s[i-2])
	}
	if i+1 < len(s) {
		w.next = Value(s[i+1])
	}
	return w
}

// step applies every rule to one position.
func step(st state, w window) (state, reason) {
	if w.cur == 0 {
		return st, rejectUnknownSymbol
	}
	if bit, ok := single[w.cur]; ok {
		if st.seen&bit != 0 {
			return st, rejectSingleRepeated
		}
		st.seen |= bit
	}
	if w.prev == 0 {
		return st, accept
	}

	if w.cur == w.prev {
		st.repeat++
		if st.repeat > maxRun[w.cur] {
			return st, rejectRunTooLong
		}
	} else {
		st.repeat = 1
	}

	if w.prev < w.cur {
		switch {
		case !subtractive[[2]int{w.prev, w.cur}]:
			return st, rejectIllegalPair
		case st.inSub:
			return st, rejectChainedSubtraction
		case w.cur > st.ceiling:
			return st, rejectAboveCeiling
		case w.prev == st.lastSub:
			return st, rejectReusedSubtrahend
		}
		st.lastSub = w.prev
		st.ceiling = w.cur
		st.inSub = true
	} else {
		switch {
		case w.prev > st.ceiling:
			return st, rejectAboveCeiling
		case w.cur == st.lastSub:
			return st, rejectReusedSubtrahend
		}
		st.ceiling = w.prev
		st.inSub = false
	}

	// Two ascending steps into the same peak, e.g. IXC.
	if w.prev2 != 0 && w.prev2 < w.cur && w.prev < w.cur {
		return st, rejectDoubleSubtraction
	}
	// After a pair, nothing larger than its smaller half may follow, e.g. XCL.
	if st.inSub && w.next > st.lastSub {
		return st, rejectTrailingSubtraction
	}
	return st, accept
}

// scan folds step over s and returns the first rejection with its index, or
// accept and len(s).
func scan(s string) (reason, int) {
	st := newState()
	for i := range len(s) {
		var r reason
		st, r = step(st, windowAt(s, i))
		if r != accept {
			return r, i
		}
	}
	return accept, len(s)
}

// IsValid reports whether candidate is an upper-case Roman numeral in
// standard form. The empty string is not a numeral.
func IsValid(candidate string) bool {
	if candidate == "" {
		return false
	}
	r, _ := scan(candidate)
	return r == accept
}
