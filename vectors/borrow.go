package vectors

import "fmt"

// span is a half-open range of element positions over an owner's storage.
type span struct {
	from, to int
}

func (s span) overlaps(o span) bool {
	return s.from < o.to && o.from < s.to
}

func (s span) String() string {
	return fmt.Sprintf("[%d:%d)", s.from, s.to)
}

// ticket is the live-ness token of one borrowed view. A view is usable
// until its ticket is released, either explicitly or because the owner
// invalidated it.
type ticket struct {
	at       span
	excl     bool
	released bool
}

// ledger tracks the views currently alive over one owner's storage. Any
// number of shared tickets may coexist, an exclusive ticket tolerates no
// other ticket on its region. The owner consults the ledger before
// reading under, writing under or moving its storage.
//
// Single-threaded on purpose, like the rest of the package.
type ledger struct {
	views []*ticket
}

// register books a new view over the given region. A sub-view created
// through an existing view passes its parent's ticket as via, so that
// the parent does not count as a conflict against its own child.
func (l *ledger) register(at span, excl bool, via *ticket) (*ticket, error) {
	l.sweep()
	for _, t := range l.views {
		if t == via || !t.at.overlaps(at) {
			continue
		}
		if excl {
			return nil, borrowConflict(fmt.Sprintf("region %s is already borrowed", at))
		}
		if t.excl {
			return nil, borrowConflict(fmt.Sprintf("region %s is already borrowed mutably", at))
		}
	}
	tk := &ticket{at: at, excl: excl}
	l.views = append(l.views, tk)
	return tk, nil
}

// sweep drops released tickets so the ledger does not grow with the
// history of past views.
func (l *ledger) sweep() {
	live := l.views[:0]
	for _, t := range l.views {
		if !t.released {
			live = append(live, t)
		}
	}
	l.views = live
}

// busy reports whether any view is alive at all.
func (l *ledger) busy() bool {
	for _, t := range l.views {
		if !t.released {
			return true
		}
	}
	return false
}

// busyOver reports whether any live view other than via overlaps the
// given region.
func (l *ledger) busyOver(at span, via *ticket) bool {
	for _, t := range l.views {
		if t != via && !t.released && t.at.overlaps(at) {
			return true
		}
	}
	return false
}

// exclusiveOver reports whether a live mutable view other than via
// overlaps the given region.
func (l *ledger) exclusiveOver(at span, via *ticket) bool {
	for _, t := range l.views {
		if t != via && !t.released && t.excl && t.at.overlaps(at) {
			return true
		}
	}
	return false
}
