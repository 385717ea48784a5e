package model

// Operation is an action a subject attempts on a note.
type Operation int

const (
	// OperationRead reads a note.
	OperationRead Operation = iota + 1
	// OperationWrite modifies a note.
	OperationWrite
	// OperationDelete removes a note.
	OperationDelete
)

func (o Operation) String() string {
	switch o {
	case OperationRead:
		return "read"
	case OperationWrite:
		return "write"
	case OperationDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Decision is the outcome of an access check.
type Decision bool

const (
	// Deny rejects the operation.
	Deny Decision = false
	// Allow permits the operation.
	Allow Decision = true
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// AccessController decides whether a subject may perform an operation on a note.
type AccessController interface {
	Authorize(subject Subject, note NoteRef, op Operation) Decision
}
