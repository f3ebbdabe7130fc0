// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of these, so
// callers can match either the concrete error or its kind with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrDuplicate    = errors.New("duplicate")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	// User-related errors
	ErrUserNotFound       = fmt.Errorf("user does not exist: %w", ErrNotFound)
	ErrUserInactive       = fmt.Errorf("user account is disabled: %w", ErrForbidden)
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrForbidden)
	ErrEmailAlreadyExists = fmt.Errorf("email already registered: %w", ErrConflict)

	// Assignment ledger errors
	ErrAgentAlreadyAssigned       = fmt.Errorf("agent already has an active assignment: %w", ErrConflict)
	ErrAssignmentNotFound         = fmt.Errorf("no active assignment for that team leader and agent: %w", ErrNotFound)
	ErrAssignmentSourceMismatch   = fmt.Errorf("agent is not assigned to the given team leader: %w", ErrConflict)
	ErrNotATeamLeader             = fmt.Errorf("user is not a team leader: %w", ErrInvalidInput)
	ErrNotAnAgent                 = fmt.Errorf("user is not an agent: %w", ErrInvalidInput)
	ErrUserHasActiveAssignment    = fmt.Errorf("user still has an active assignment: %w", ErrConflict)
	ErrTeamLeaderHasActiveMembers = fmt.Errorf("team leader still has active members: %w", ErrConflict)

	// Viewing errors
	ErrViewingNotFound      = fmt.Errorf("viewing does not exist: %w", ErrNotFound)
	ErrDuplicateRootViewing = fmt.Errorf("a root viewing already exists for this lead and property: %w", ErrDuplicate)
	ErrParentIsFollowUp     = fmt.Errorf("parent viewing is itself a follow-up: %w", ErrNotFound)
	ErrInvalidViewingStatus = fmt.Errorf("unknown viewing status: %w", ErrInvalidInput)

	// Lead / property errors
	ErrLeadNotFound     = fmt.Errorf("lead does not exist: %w", ErrNotFound)
	ErrPropertyNotFound = fmt.Errorf("property does not exist: %w", ErrNotFound)

	// Authorization errors
	ErrActionNotPermitted = fmt.Errorf("role may not perform this action: %w", ErrForbidden)
	ErrOutsideScope       = fmt.Errorf("target is outside the caller's scope: %w", ErrForbidden)
	ErrSelfPrivilegeEdit  = fmt.Errorf("cannot change your own role or account status: %w", ErrForbidden)
)
