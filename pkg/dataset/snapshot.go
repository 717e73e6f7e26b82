package dataset

import (
	"fmt"

	"github.com/getmockd/hrmockd/pkg/query"
)

// Snapshot is the queryable, read-only view of a Dataset.
type Snapshot struct {
	Departments     *query.Collection[Department]
	Locations       *query.Collection[Location]
	Positions       *query.Collection[Position]
	Users           *query.Collection[User]
	OnboardingUsers *query.Collection[OnboardingUser]
	Employees       *query.Collection[Employee]
	LegalEntities   *query.Collection[LegalEntity]
	PayrollCycles   *query.Collection[PayrollCycle]
	LeaveTypes      *query.Collection[LeaveType]
	LeaveRequests   *query.Collection[LeaveRequest]
	Candidates      *query.Collection[Candidate]

	byKind map[Kind]erased
}

// erased is a type-erased collection view used for lookups by Kind.
type erased struct {
	len func() int
	get func(id string) (any, error)
	all func() []any
}

func erase[T any](c *query.Collection[T]) erased {
	return erased{
		len: c.Len,
		get: func(id string) (any, error) {
			rec, err := c.Get(id)
			if err != nil {
				return nil, err
			}
			return rec, nil
		},
		all: func() []any {
			recs := c.All()
			out := make([]any, len(recs))
			for i, r := range recs {
				out[i] = r
			}
			return out
		},
	}
}

// NewSnapshot indexes ds and attaches each collection's filter registry.
func NewSnapshot(ds *Dataset) *Snapshot {
	s := &Snapshot{
		Departments: query.NewCollection(string(KindDepartments), ds.Departments,
			func(d Department) string { return d.ID },
			query.Contains("title", func(d Department) string { return d.Title }),
			query.Equals("departmentId", func(d Department) string { return d.DepartmentID }),
			query.Contains("description", func(d Department) string { return d.Description }),
			query.Flag("deleted", func(d Department) bool { return d.Deleted }).WithDefault("false"),
		),
		Locations: query.NewCollection(string(KindLocations), ds.Locations,
			func(l Location) string { return l.ID },
			query.Contains("title", func(l Location) string { return l.Title }),
			query.Equals("locationId", func(l Location) string { return l.LocationID }),
			query.Contains("description", func(l Location) string { return l.Description }),
			query.Flag("deleted", func(l Location) bool { return l.Deleted }).WithDefault("false"),
		),
		Positions: query.NewCollection(string(KindPositions), ds.Positions,
			func(p Position) string { return p.ID },
			query.Contains("title", func(p Position) string { return p.Title }),
			query.Equals("positionId", func(p Position) string { return p.PositionID }),
			query.Contains("description", func(p Position) string { return p.Description }),
			query.Flag("deleted", func(p Position) bool { return p.Deleted }).WithDefault("false"),
		),
		Users: query.NewCollection(string(KindUsers), ds.Users,
			func(u User) string { return u.ID },
			query.Contains("firstName", func(u User) string { return u.FirstName }),
			query.Contains("lastName", func(u User) string { return u.LastName }),
			query.Contains("email", func(u User) string { return u.Email }),
			query.Flag("deleted", func(u User) bool { return !u.Active }).WithDefault("false"),
		),
		OnboardingUsers: query.NewCollection(string(KindOnboardingUsers), ds.OnboardingUsers,
			func(u OnboardingUser) string { return u.ID },
			query.Contains("firstName", func(u OnboardingUser) string { return u.FirstName }),
			query.Contains("lastName", func(u OnboardingUser) string { return u.LastName }),
			query.Contains("email", func(u OnboardingUser) string { return u.Email }),
			query.Flag("deleted", func(u OnboardingUser) bool { return !u.Active }).WithDefault("false"),
		),
		Employees: query.NewCollection(string(KindEmployees), ds.Employees,
			func(e Employee) string { return e.ID },
			query.Equals("employmentType", func(e Employee) string { return string(e.EmploymentType) }),
			query.Equals("rateType", func(e Employee) string { return string(e.RateType) }),
			query.Equals("payCycle", func(e Employee) string { return e.PayCycle }),
		),
		LegalEntities: query.NewCollection(string(KindLegalEntities), ds.LegalEntities,
			func(l LegalEntity) string { return l.ID },
			query.Contains("businessName", func(l LegalEntity) string { return l.BusinessName }),
			query.Contains("tradingName", func(l LegalEntity) string { return l.TradingName }),
			query.Substring("abn", func(l LegalEntity) string { return l.ABN }),
		),
		PayrollCycles: query.NewCollection(string(KindPayrollCycles), ds.PayrollCycles,
			func(p PayrollCycle) string { return p.ID },
			query.Contains("title", func(p PayrollCycle) string { return p.Title }),
			query.Contains("description", func(p PayrollCycle) string { return p.Description }),
			query.Equals("type", func(p PayrollCycle) string { return string(p.Type) }),
		),
		LeaveTypes: query.NewCollection(string(KindLeaveTypes), ds.LeaveTypes,
			func(l LeaveType) string { return l.ID },
			query.Contains("title", func(l LeaveType) string { return l.Title }),
			query.Equals("accrualType", func(l LeaveType) string { return string(l.AccrualType) }),
			query.Flag("deleted", func(l LeaveType) bool { return l.Deleted }).WithDefault("false"),
		),
		LeaveRequests: query.NewCollection(string(KindLeaveRequests), ds.LeaveRequests,
			func(l LeaveRequest) string { return l.ID },
			query.Equals("status", func(l LeaveRequest) string { return string(l.Status) }),
			query.Equals("leaveTypeId", func(l LeaveRequest) string { return l.LeaveType.ID }),
			query.Equals("userId", func(l LeaveRequest) string { return l.User.ID }),
		),
		Candidates: query.NewCollection(string(KindCandidates), ds.Candidates,
			func(c Candidate) string { return c.ID },
			query.Contains("firstName", func(c Candidate) string { return c.FirstName }),
			query.Contains("lastName", func(c Candidate) string { return c.LastName }),
			query.Contains("email", func(c Candidate) string { return c.Email }),
			query.Substring("homePhone", func(c Candidate) string { return c.HomePhone }),
			query.Substring("mobile", func(c Candidate) string { return c.Mobile }),
		),
	}
	s.byKind = map[Kind]erased{
		KindDepartments:     erase(s.Departments),
		KindLocations:       erase(s.Locations),
		KindPositions:       erase(s.Positions),
		KindUsers:           erase(s.Users),
		KindOnboardingUsers: erase(s.OnboardingUsers),
		KindEmployees:       erase(s.Employees),
		KindLegalEntities:   erase(s.LegalEntities),
		KindPayrollCycles:   erase(s.PayrollCycles),
		KindLeaveTypes:      erase(s.LeaveTypes),
		KindLeaveRequests:   erase(s.LeaveRequests),
		KindCandidates:      erase(s.Candidates),
	}
	return s
}

// Build generates a dataset and wraps it in a Snapshot.
func Build(opts Options) (*Snapshot, error) {
	ds, err := Generate(opts)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(ds), nil
}

// Counts reports the size of every collection.
type Counts struct {
	Departments     int `json:"departments"`
	Locations       int `json:"locations"`
	Positions       int `json:"positions"`
	Users           int `json:"users"`
	OnboardingUsers int `json:"onboardingUsers"`
	Employees       int `json:"employees"`
	LegalEntities   int `json:"legalEntities"`
	PayrollCycles   int `json:"payrollCycles"`
	LeaveTypes      int `json:"leaveTypes"`
	LeaveRequests   int `json:"leaveRequests"`
	Candidates      int `json:"candidates"`
}

// Total returns the sum of all collection sizes.
func (c Counts) Total() int {
	return c.Departments + c.Locations + c.Positions + c.Users + c.OnboardingUsers +
		c.Employees + c.LegalEntities + c.PayrollCycles + c.LeaveTypes + c.LeaveRequests + c.Candidates
}

// Counts returns the size of every collection.
func (s *Snapshot) Counts() Counts {
	return Counts{
		Departments:     s.Departments.Len(),
		Locations:       s.Locations.Len(),
		Positions:       s.Positions.Len(),
		Users:           s.Users.Len(),
		OnboardingUsers: s.OnboardingUsers.Len(),
		Employees:       s.Employees.Len(),
		LegalEntities:   s.LegalEntities.Len(),
		PayrollCycles:   s.PayrollCycles.Len(),
		LeaveTypes:      s.LeaveTypes.Len(),
		LeaveRequests:   s.LeaveRequests.Len(),
		Candidates:      s.Candidates.Len(),
	}
}

// Resolve returns the record a reference points at. Unknown ids yield a
// *query.NotFoundError.
func (s *Snapshot) Resolve(ref Ref) (any, error) {
	c, ok := s.byKind[ref.Collection]
	if !ok {
		return nil, fmt.Errorf("resolve %s: unknown collection %q", ref, ref.Collection)
	}
	return c.get(ref.ID)
}

// Records returns every record of kind k in insertion order.
func (s *Snapshot) Records(k Kind) ([]any, error) {
	c, ok := s.byKind[k]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", k)
	}
	return c.all(), nil
}

// Len returns the number of records of kind k, or 0 for unknown kinds.
func (s *Snapshot) Len(k Kind) int {
	if c, ok := s.byKind[k]; ok {
		return c.len()
	}
	return 0
}
