// Package undo implements nested reversible-mutation scopes for the object
// store. A Session records an inverse closure for every mutation made while
// it is open; Rollback runs those closures in reverse, Commit folds the
// session's record into its parent (or discards it, at the root).
//
// Sessions nest to at least three deep in normal operation: block scope,
// transaction scope, operation scope.
package undo

// Session is a single undo scope. The zero value is not usable; create one
// with Begin or BeginChild.
type Session struct {
	parent  *Session
	undos   []func()
	done    bool
}

// Begin starts a new root session with no parent.
func Begin() *Session {
	return &Session{}
}

// BeginChild starts a session nested under s. Mutations recorded in the
// child roll back independently of the parent until the child commits.
func (s *Session) BeginChild() *Session {
	return &Session{parent: s}
}

// Record appends an inverse closure to the session. Callers invoke this
// immediately before or after applying a mutation so that undo always has
// an up-to-date before-image.
func (s *Session) Record(inverse func()) {
	if s.done {
		panic("undo: Record called on a closed session")
	}
	s.undos = append(s.undos, inverse)
}

// Rollback runs every recorded inverse in reverse order and closes the
// session. Calling Rollback or Commit a second time panics: a session is a
// single-use RAII handle.
func (s *Session) Rollback() {
	if s.done {
		panic("undo: session already closed")
	}
	for i := len(s.undos) - 1; i >= 0; i-- {
		s.undos[i]()
	}
	s.done = true
}

// Commit folds this session's undo history into its parent so that an
// enclosing rollback still undoes these mutations. At the root, Commit
// simply discards the history (nothing left to roll back to).
func (s *Session) Commit() {
	if s.done {
		panic("undo: session already closed")
	}
	if s.parent != nil {
		s.parent.undos = append(s.parent.undos, s.undos...)
	}
	s.done = true
}

// Depth reports how many scopes are nested above and including s (root is
// depth 1). Used only for diagnostics; the store never rejects deep nesting.
func (s *Session) Depth() int {
	d := 1
	for p := s.parent; p != nil; p = p.parent {
		d++
	}
	return d
}
