package dataset

import (
	"fmt"
	"strings"
)

// Kind names a collection by its URL path segment.
type Kind string

// Collection kinds.
const (
	KindDepartments     Kind = "departments"
	KindLocations       Kind = "locations"
	KindPositions       Kind = "positions"
	KindUsers           Kind = "users"
	KindOnboardingUsers Kind = "onboarding-users"
	KindEmployees       Kind = "employees"
	KindLegalEntities   Kind = "legal-entities"
	KindPayrollCycles   Kind = "payroll-cycles"
	KindLeaveTypes      Kind = "leave-types"
	KindLeaveRequests   Kind = "leave-requests"
	KindCandidates      Kind = "candidates"
)

type kindInfo struct {
	key   string
	label string
}

var kindInfos = map[Kind]kindInfo{
	KindDepartments:     {"departments", "Department"},
	KindLocations:       {"locations", "Location"},
	KindPositions:       {"positions", "Position"},
	KindUsers:           {"users", "User"},
	KindOnboardingUsers: {"onboardingUsers", "Onboarding User"},
	KindEmployees:       {"employees", "Employee"},
	KindLegalEntities:   {"legalEntities", "Legal Entity"},
	KindPayrollCycles:   {"payrollCycles", "Payroll Cycle"},
	KindLeaveTypes:      {"leaveTypes", "Leave Type"},
	KindLeaveRequests:   {"leaveRequests", "Leave Request"},
	KindCandidates:      {"candidates", "Candidate"},
}

// Kinds returns every collection kind in generation-report order.
func Kinds() []Kind {
	return []Kind{
		KindDepartments,
		KindLocations,
		KindPositions,
		KindUsers,
		KindOnboardingUsers,
		KindEmployees,
		KindLegalEntities,
		KindPayrollCycles,
		KindLeaveTypes,
		KindLeaveRequests,
		KindCandidates,
	}
}

// ParseKind accepts a path name ("leave-types") or a camelCase key
// ("leaveTypes").
func ParseKind(s string) (Kind, error) {
	for k, info := range kindInfos {
		if s == string(k) || s == info.key {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown collection %q", s)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kindInfos[k]
	return ok
}

// Key returns the camelCase name used in JSON summaries.
func (k Kind) Key() string { return kindInfos[k].key }

// Label returns the singular display name used in error details.
func (k Kind) Label() string { return kindInfos[k].label }

// Ref is a typed reference to a record in another collection.
// It serializes as "/{kind}/{id}".
type Ref struct {
	Collection Kind
	ID         string
}

// NewRef returns a reference to the record id in collection k.
func NewRef(k Kind, id string) Ref {
	return Ref{Collection: k, ID: id}
}

// String returns the path form of the reference.
func (r Ref) String() string {
	return "/" + string(r.Collection) + "/" + r.ID
}

// IsZero reports whether r is the zero reference.
func (r Ref) IsZero() bool {
	return r.Collection == "" && r.ID == ""
}

// MarshalText implements encoding.TextMarshaler.
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Ref) UnmarshalText(b []byte) error {
	parsed, err := ParseRef(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRef parses the path form "/{kind}/{id}".
func ParseRef(s string) (Ref, error) {
	rest, ok := strings.CutPrefix(s, "/")
	if !ok {
		return Ref{}, fmt.Errorf("invalid reference %q: missing leading slash", s)
	}
	kind, id, ok := strings.Cut(rest, "/")
	if !ok || id == "" || strings.Contains(id, "/") {
		return Ref{}, fmt.Errorf("invalid reference %q: want /{collection}/{id}", s)
	}
	if !Kind(kind).Valid() {
		return Ref{}, fmt.Errorf("invalid reference %q: unknown collection %q", s, kind)
	}
	return Ref{Collection: Kind(kind), ID: id}, nil
}
