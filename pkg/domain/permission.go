package domain

import dErrors "clearview/pkg/domain-errors"

// Permission is the access level a user holds on an upload.
// Invariant: levels are ordered; a higher level implies every lower one.
//
// Usage: construct via ParsePermission at trust boundaries; direct casting
// bypasses validation.
type Permission int

const (
	PermNone  Permission = 0
	PermRead  Permission = 1
	PermWrite Permission = 3
	PermAdmin Permission = 10
)

var permissionNames = map[string]Permission{
	"none":  PermNone,
	"read":  PermRead,
	"write": PermWrite,
	"admin": PermAdmin,
}

// ParsePermission constructs a Permission from its name.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParsePermission(s string) (Permission, error) {
	if s == "" {
		return PermNone, dErrors.New(dErrors.CodeInvalidInput, "permission cannot be empty")
	}
	p, ok := permissionNames[s]
	if !ok {
		return PermNone, dErrors.New(dErrors.CodeInvalidInput, "invalid permission")
	}
	return p, nil
}

// CanWrite reports whether the level allows recording clearing decisions.
func (p Permission) CanWrite() bool { return p >= PermWrite }

// CanRead reports whether the level allows viewing an upload.
func (p Permission) CanRead() bool { return p >= PermRead }

func (p Permission) String() string {
	for name, v := range permissionNames {
		if v == p {
			return name
		}
	}
	return "unknown"
}
