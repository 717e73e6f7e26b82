package dataset

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mathrand "math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/getmockd/hrmockd/internal/id"
)

// Collection sizes.
const (
	UserCount           = 50
	OnboardingUserCount = 10
	LegalEntityCount    = 3
	LeaveRequestCount   = 100
	CandidateCount      = 25
)

// OnboardingWindow bounds how far in the future an onboarding user starts.
const OnboardingWindow = 180 * day

var (
	departmentNames = []string{
		"Engineering", "Human Resources", "Finance", "Marketing", "Sales",
		"Operations", "IT Support", "Legal", "Customer Service", "Research & Development",
	}
	locationNames = []string{
		"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide",
		"Canberra", "Darwin", "Hobart", "Auckland", "Wellington",
	}
	positionTitles = []string{
		"Software Engineer", "Senior Developer", "Project Manager", "Business Analyst", "HR Manager",
		"Finance Director", "Marketing Specialist", "Sales Representative", "Operations Manager", "Legal Counsel",
	}
	payrollCatalog = []struct {
		typ   PayCycleType
		title string
		weeks int
	}{
		{PayCycleWeekly, "Weekly", 52},
		{PayCycleFortnightly, "Fortnightly", 26},
		{PayCycleFourWeekly, "4 Weekly", 13},
		{PayCycleMonthly, "Monthly", 12},
	}
	leaveCatalog = []struct {
		title       string
		code        string
		accrual     AccrualType
		entitlement string
	}{
		{"Annual Leave", "AL", AccrualProRata, "ANNUAL_LEAVE"},
		{"Personal Leave", "PL", AccrualProRata, "PERSONAL_LEAVE"},
		{"Long Service Leave", "LSL", AccrualProRata, "LONG_SERVICE_LEAVE"},
		{"Compassionate Leave", "CL", AccrualLimitBased, ""},
		{"Maternity Leave", "ML", AccrualFreeText, ""},
	}

	roles             = []Role{RoleEmployee, RoleManager, RoleCompanyAdmin}
	employmentTypes   = []EmploymentType{EmploymentFullTime, EmploymentPartTime, EmploymentCasual, EmploymentContractor}
	rateTypes         = []RateType{RateDaily, RateHourly}
	leaveStatuses     = []LeaveStatus{LeavePending, LeaveApproved, LeaveRejected, LeaveCancelled}
	candidateStatuses = []CandidateStatus{CandidateApplied, CandidateScreening, CandidateInterview, CandidateOffer, CandidateHired, CandidateRejected}
	terminationReason = []string{"Resignation", "Redundancy", "End of Contract"}
	relationships     = []string{"Spouse", "Parent", "Sibling", "Friend"}

	hoursPerDay = decimal.RequireFromString("7.5")
)

// Options controls dataset generation.
type Options struct {
	// Seed makes generation reproducible when non-zero.
	Seed int64

	// Now is the reference time for "now"-bounded dates. Zero means time.Now.
	Now time.Time

	// Entropy seeds the stream when Seed is zero. Nil means crypto/rand.
	Entropy io.Reader
}

// Generate builds a complete dataset. It returns an error, and no dataset,
// if the random or id provider fails.
func Generate(opts Options) (*Dataset, error) {
	stream, err := newStream(opts)
	if err != nil {
		return nil, err
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return newGenerator(stream, id.NewSource(stream), now).run()
}

func newStream(opts Options) (*mathrand.ChaCha8, error) {
	var seed [32]byte
	if opts.Seed != 0 {
		binary.LittleEndian.PutUint64(seed[:8], uint64(opts.Seed))
		return mathrand.NewChaCha8(seed), nil
	}
	entropy := opts.Entropy
	if entropy == nil {
		entropy = rand.Reader
	}
	if _, err := io.ReadFull(entropy, seed[:]); err != nil {
		return nil, fmt.Errorf("read seed entropy: %w", err)
	}
	return mathrand.NewChaCha8(seed), nil
}

type generator struct {
	fake faker
	ids  *id.Source
	now  time.Time
	ds   *Dataset
}

func newGenerator(src mathrand.Source, ids *id.Source, now time.Time) *generator {
	return &generator{
		fake: faker{rnd{r: mathrand.New(src)}},
		ids:  ids,
		now:  now.UTC(),
		ds:   &Dataset{},
	}
}

func (g *generator) run() (*Dataset, error) {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"departments", g.departments},
		{"locations", g.locations},
		{"positions", g.positions},
		{"legal entities", g.legalEntities},
		{"payroll cycles", g.payrollCycles},
		{"leave types", g.leaveTypes},
		{"users", g.users},
		{"onboarding users", g.onboardingUsers},
		{"employees", g.employees},
		{"leave requests", g.leaveRequests},
		{"candidates", g.candidates},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return nil, fmt.Errorf("generate %s: %w", step.name, err)
		}
	}
	return g.ds, nil
}

func (g *generator) departments() error {
	for i, name := range departmentNames {
		uid, err := g.ids.UUID()
		if err != nil {
			return err
		}
		d := Department{
			ID:           uid,
			Title:        name,
			DepartmentID: strconv.Itoa(i + 1),
			Description:  "<p>" + name + " Department</p>",
			Path:         fmt.Sprintf("/%d/", i+1),
		}
		if i > 0 && g.fake.chance(0.3) {
			d.Parent = ptr(g.ds.Departments[g.fake.intN(i)].ID)
		}
		g.ds.Departments = append(g.ds.Departments, d)
	}
	return nil
}

func (g *generator) locations() error {
	for i, name := range locationNames {
		uid, err := g.ids.UUID()
		if err != nil {
			return err
		}
		addr := g.fake.address(true)
		g.ds.Locations = append(g.ds.Locations, Location{
			ID:           uid,
			Title:        name,
			LocationID:   strings.ToUpper(name),
			Description:  name + " Office",
			AddressLine1: addr.AddressLine1,
			AddressLine2: addr.AddressLine2,
			Suburb:       addr.Suburb,
			State:        addr.State,
			Postcode:     addr.Postcode,
			Country:      addr.Country,
			Path:         fmt.Sprintf("/%d/", i+1),
		})
	}
	return nil
}

func (g *generator) positions() error {
	for i, title := range positionTitles {
		uid, err := g.ids.UUID()
		if err != nil {
			return err
		}
		g.ds.Positions = append(g.ds.Positions, Position{
			ID:             uid,
			Title:          title,
			PositionID:     strconv.Itoa(1000 + i),
			Description:    title + " role",
			Qualifications: fmt.Sprintf("Bachelor's degree and %d years experience", g.fake.between(1, 5)),
		})
	}
	return nil
}

func (g *generator) legalEntities() error {
	for i := 0; i < LegalEntityCount; i++ {
		uid, err := g.ids.UUID()
		if err != nil {
			return err
		}
		g.ds.LegalEntities = append(g.ds.LegalEntities, LegalEntity{
			ID:           uid,
			ABN:          g.abn(),
			BusinessName: g.fake.company(),
			TradingName:  g.fake.company(),
			BranchNumber: padded(i+1, 2),
			ContactName:  g.fake.fullName(),
			Phone:        g.fake.phone(),
			Fax:          g.fake.phone(),
			Email:        g.fake.email(),
			Default:      i == 0,
			Active:       true,
			Jurisdiction: "AU",
			Address:      g.fake.address(true),
		})
	}
	return nil
}

func (g *generator) payrollCycles() error {
	for _, c := range payrollCatalog {
		uid, err := g.ids.UUID()
		if err != nil {
			return err
		}
		g.ds.PayrollCycles = append(g.ds.PayrollCycles, PayrollCycle{
			ID:            uid,
			Title:         c.title,
			Description:   c.title + " payroll cycle",
			StartDate:     "01/01/2024",
			Type:          c.typ,
			Default:       c.typ == PayCycleFortnightly,
			WeeksPerAnnum: c.weeks,
			Jurisdiction:  "AU",
		})
	}
	return nil
}

func (g *generator) leaveTypes() error {
	for _, lt := range leaveCatalog {
		uid, err := g.ids.UUID()
		if err != nil {
			return err
		}
		rec := LeaveType{
			ID:           uid,
			AccrualType:  lt.accrual,
			Title:        lt.title,
			DisplayTitle: lt.title,
			Description:  "<p>" + lt.title + " policy details...</p>",
			Code:         lt.code,
		}
		if lt.entitlement != "" {
			rec.EntitlementType = ptr(lt.entitlement)
		}
		g.ds.LeaveTypes = append(g.ds.LeaveTypes, rec)
	}
	return nil
}

func (g *generator) users() error {
	for i := 0; i < UserCount; i++ {
		uid, err := g.ids.UUID()
		if err != nil {
			return err
		}
		first, last := g.fake.firstName(), g.fake.lastName()
		email := strings.ToLower(g.fake.emailFor(first, last))
		start := g.fake.timeBetween(ymd(2020, time.January, 1), ymd(2024, time.January, 1))

		u := User{
			ID:         uid,
			Identifier: email,
			FirstName:  first,
			LastName:   last,
			Username:   email,
			Email:      email,
			Active:     !g.fake.chance(0.1),
		}
		if g.fake.chance(0.2) {
			u.PreferredFirstName = ptr(g.fake.firstName())
		}
		u.EmployeeNumber = ptr(strconv.Itoa(10000 + i))
		if i > 0 && g.fake.chance(0.3) {
			u.Manager = ptr(g.ds.Users[g.fake.intN(min(i, 10))].ID)
		}
		u.DateOfBirth = date(g.fake.timeBetween(ymd(1960, time.January, 1), ymd(2000, time.December, 31)))
		u.StartDate = date(start)
		if g.fake.chance(0.1) {
			u.EndDate = ptr(date(g.fake.timeBetween(start, g.now)))
		}
		u.Timezone = "Australia/Sydney"
		u.Country = "Australia"
		u.State = g.fake.state()
		u.Role = pick(g.fake.rnd, roles)
		u.Mobile = g.fake.phone()
		u.CustomData = CustomData{
			Email:          g.fake.email(),
			DriversLicense: strings.ToUpper(g.fake.alnum(8)),
		}
		g.assign(&u)
		u.ServiceStartDate = u.StartDate
		g.ds.Users = append(g.ds.Users, u)
	}
	return nil
}

func (g *generator) onboardingUsers() error {
	for i := 0; i < OnboardingUserCount; i++ {
		uid, err := g.ids.UUID()
		if err != nil {
			return err
		}
		first, last := g.fake.firstName(), g.fake.lastName()
		start := g.fake.timeBetween(g.now, g.now.Add(OnboardingWindow))

		u := User{
			ID:        uid,
			FirstName: first,
			LastName:  last,
			Email:     strings.ToLower(g.fake.emailFor(first, last)),
			Active:    true,
			Manager:   ptr(pick(g.fake.rnd, g.ds.Users).ID),
		}
		u.DateOfBirth = date(g.fake.timeBetween(ymd(1980, time.January, 1), ymd(2000, time.December, 31)))
		u.StartDate = date(start)
		u.Timezone = "Australia/Sydney"
		u.Country = "Australia"
		u.State = g.fake.state()
		u.Role = RoleEmployee
		u.Mobile = g.fake.phone()
		g.assign(&u)
		u.ServiceStartDate = u.StartDate
		g.ds.OnboardingUsers = append(g.ds.OnboardingUsers, OnboardingUser(u))
	}
	return nil
}

// assign links a user to a random position, location, department and
// legal entity.
func (g *generator) assign(u *User) {
	u.Position = pick(g.fake.rnd, g.ds.Positions).ID
	u.Location = pick(g.fake.rnd, g.ds.Locations).ID
	u.Department = pick(g.fake.rnd, g.ds.Departments).ID
	u.LegalEntity = pick(g.fake.rnd, g.ds.LegalEntities).ID
}

func (g *generator) employees() error {
	for _, u := range g.ds.Users {
		name := u.FirstName + " " + u.LastName
		e := Employee{
			ID:              u.ID,
			EmploymentType:  pick(g.fake.rnd, employmentTypes),
			UnitsPerWeek:    decimal.New(int64(g.fake.between(100, 499)), -1).StringFixed(1),
			Rate:            g.fake.between(50000, 149999),
			RateType:        pick(g.fake.rnd, rateTypes),
			TerminationDate: u.EndDate,
			PayCycle:        pick(g.fake.rnd, g.ds.PayrollCycles).ID,
		}
		e.BankAccounts.AU = []BankAccountAU{{
			AccountName:   name,
			BSB:           g.fake.between(100000, 999999),
			AccountNumber: g.fake.between(10000000, 999999999),
			IsPrimary:     true,
			RateType:      "AMOUNT",
			Value:         1000,
		}}
		e.WithholdingDetails.AU = WithholdingDetailsAU{
			TFN:                     strconv.Itoa(g.fake.between(100000000, 999999999)),
			PrimaryEmail:            u.Email,
			BasisOfPayment:          "Full-time",
			IsAustralianResident:    true,
			IsClaimTaxFreeThreshold: g.fake.chance(0.5),
			IsClaimPensionerOffset:  g.fake.chance(0.2),
			VisaCountry:             "AU",
			HasSTLR:                 g.fake.chance(0.3),
			IsInformationCorrect:    true,
			DeclarationDate:         u.StartDate,
			DeclarationDateTimezone: "Australia/Sydney",
		}
		e.RetirementFundAccounts.AU = RetirementFundAccountAU{
			SuperFundName:    g.fake.company() + " Super Fund",
			SuperFundType:    "Employee nominated super fund",
			ABN:              g.abn(),
			MembershipNumber: g.fake.alnum(10),
			AccountName:      name,
			USI:              strings.ToUpper(g.fake.alnum(8)),
		}
		if u.EndDate != nil {
			e.TerminationDetails = &TerminationDetails{
				TerminationDate: *u.EndDate,
				Reason:          pick(g.fake.rnd, terminationReason),
				Notes:           "Standard termination process completed",
			}
		}
		e.EmergencyContacts = []EmergencyContact{{
			Name:         g.fake.fullName(),
			Relationship: pick(g.fake.rnd, relationships),
			Phone:        g.fake.phone(),
			Email:        g.fake.email(),
		}}
		g.ds.Employees = append(g.ds.Employees, e)
	}
	return nil
}

func (g *generator) leaveRequests() error {
	yearStart := ymd(2024, time.January, 1)
	for i := 0; i < LeaveRequestCount; i++ {
		uid, err := g.ids.UUID()
		if err != nil {
			return err
		}
		user := pick(g.fake.rnd, g.ds.Users)
		leaveType := pick(g.fake.rnd, g.ds.LeaveTypes)
		start := g.fake.timeBetween(yearStart, ymd(2024, time.December, 31))
		end := g.fake.timeBetween(start, start.Add(14*day))
		days := int64(end.Sub(start) / day)

		g.ds.LeaveRequests = append(g.ds.LeaveRequests, LeaveRequest{
			ID:           uid,
			User:         NewRef(KindUsers, user.ID),
			StartDate:    date(start),
			EndDate:      date(end),
			CreatedDate:  date(g.fake.timeBetween(yearStart, start)),
			ModifiedDate: date(g.fake.timeBetween(start, g.now)),
			Status:       pick(g.fake.rnd, leaveStatuses),
			Hours:        decimal.NewFromInt(days).Mul(hoursPerDay).InexactFloat64(),
			LeaveType:    NewRef(KindLeaveTypes, leaveType.ID),
		})
	}
	return nil
}

func (g *generator) candidates() error {
	for i := 0; i < CandidateCount; i++ {
		uid, err := g.ids.UUID()
		if err != nil {
			return err
		}
		first, last := g.fake.firstName(), g.fake.lastName()
		g.ds.Candidates = append(g.ds.Candidates, Candidate{
			ID:              uid,
			FirstName:       first,
			LastName:        last,
			Email:           strings.ToLower(g.fake.emailFor(first, last)),
			HomePhone:       g.fake.phone(),
			Mobile:          g.fake.phone(),
			Address:         g.fake.address(false),
			ApplicationDate: date(g.fake.timeBetween(ymd(2024, time.January, 1), g.now)),
			Status:          pick(g.fake.rnd, candidateStatuses),
			Position:        pick(g.fake.rnd, g.ds.Positions).Title,
		})
	}
	return nil
}

// abn returns an 11-digit Australian Business Number.
func (g *generator) abn() string {
	return strconv.FormatInt(g.fake.int64Between(10000000000, 99999999999), 10)
}
