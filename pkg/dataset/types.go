package dataset

import "encoding/json"

// EmploymentType classifies an employee's engagement.
type EmploymentType string

// Employment types.
const (
	EmploymentFullTime   EmploymentType = "FULLTIME"
	EmploymentPartTime   EmploymentType = "PARTTIME"
	EmploymentCasual     EmploymentType = "CASUAL"
	EmploymentContractor EmploymentType = "CONTRACTOR"
)

// RateType is the unit an employee's rate is expressed in.
type RateType string

// Rate types.
const (
	RateDaily  RateType = "DAILY"
	RateHourly RateType = "HOURLY"
)

// PayCycleType is the frequency of a payroll cycle.
type PayCycleType string

// Payroll cycle types.
const (
	PayCycleWeekly      PayCycleType = "WEEKLY"
	PayCycleFortnightly PayCycleType = "FORTNIGHTLY"
	PayCycleFourWeekly  PayCycleType = "FOURWEEKLY"
	PayCycleMonthly     PayCycleType = "MONTHLY"
)

// AccrualType describes how a leave type accrues.
type AccrualType string

// Accrual types.
const (
	AccrualProRata    AccrualType = "PRO_RATA_ACCRUAL"
	AccrualLimitBased AccrualType = "LIMIT_BASED"
	AccrualFreeText   AccrualType = "FREE_TEXT"
)

// Role is a user's access role.
type Role string

// Roles.
const (
	RoleEmployee     Role = "EMPLOYEE"
	RoleManager      Role = "MANAGER"
	RoleCompanyAdmin Role = "COMPANY_ADMIN"
)

// LeaveStatus is the workflow state of a leave request.
type LeaveStatus string

// Leave request statuses.
const (
	LeavePending   LeaveStatus = "PENDING"
	LeaveApproved  LeaveStatus = "APPROVED"
	LeaveRejected  LeaveStatus = "REJECTED"
	LeaveCancelled LeaveStatus = "CANCELLED"
)

// CandidateStatus is a recruitment pipeline stage.
type CandidateStatus string

// Candidate statuses.
const (
	CandidateApplied   CandidateStatus = "Applied"
	CandidateScreening CandidateStatus = "Screening"
	CandidateInterview CandidateStatus = "Interview"
	CandidateOffer     CandidateStatus = "Offer"
	CandidateHired     CandidateStatus = "Hired"
	CandidateRejected  CandidateStatus = "Rejected"
)

// Department is an organisational unit. Parent, when set, is the id of a
// department generated earlier.
type Department struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	DepartmentID string  `json:"departmentId"`
	Description  string  `json:"description"`
	Path         string  `json:"path"`
	Parent       *string `json:"parent"`
	Deleted      bool    `json:"deleted"`
}

// Location is an office.
type Location struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	LocationID   string  `json:"locationId"`
	Description  string  `json:"description"`
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 string  `json:"addressLine2"`
	Suburb       string  `json:"suburb"`
	State        string  `json:"state"`
	Postcode     string  `json:"postcode"`
	Country      string  `json:"country"`
	Path         string  `json:"path"`
	Parent       *string `json:"parent"`
	Deleted      bool    `json:"deleted"`
}

// Position is a job title.
type Position struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	PositionID     string  `json:"positionId"`
	Description    string  `json:"description"`
	Qualifications string  `json:"qualifications"`
	Parent         *string `json:"parent"`
	Deleted        bool    `json:"deleted"`
}

// Address is a postal address. Candidate addresses carry no second line.
type Address struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Suburb       string `json:"suburb"`
	State        string `json:"state"`
	Postcode     string `json:"postcode"`
	Country      string `json:"country"`
}

// LegalEntity is an employing business.
type LegalEntity struct {
	ID           string  `json:"id"`
	ABN          string  `json:"abn"`
	BusinessName string  `json:"businessName"`
	TradingName  string  `json:"tradingName"`
	BranchNumber string  `json:"branchNumber"`
	ContactName  string  `json:"contactName"`
	Phone        string  `json:"phone"`
	Fax          string  `json:"fax"`
	Email        string  `json:"email"`
	Default      bool    `json:"default"`
	Active       bool    `json:"active"`
	Jurisdiction string  `json:"jurisdiction"`
	Address      Address `json:"address"`
}

// PayrollCycle is a pay frequency definition.
type PayrollCycle struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	StartDate     string       `json:"startDate"`
	Type          PayCycleType `json:"type"`
	Default       bool         `json:"default"`
	WeeksPerAnnum int          `json:"weeksPerAnnum"`
	Jurisdiction  string       `json:"jurisdiction"`
}

// LeaveType is a leave policy.
type LeaveType struct {
	ID              string      `json:"id"`
	AccrualType     AccrualType `json:"accrualType"`
	Title           string      `json:"title"`
	DisplayTitle    string      `json:"displayTitle"`
	Description     string      `json:"description"`
	Code            string      `json:"code"`
	EntitlementType *string     `json:"entitlementType"`
	Deleted         bool        `json:"deleted"`
}

// CustomData holds tenant-defined user fields. Onboarding users carry none.
type CustomData struct {
	Email          string `json:"customField_email,omitempty"`
	DriversLicense string `json:"customField_drivers_license,omitempty"`
}

// User is a person with platform access. Dates use the YYYY-MM-DD layout.
type User struct {
	ID                 string     `json:"id"`
	Identifier         string     `json:"identifier,omitempty"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	PreferredFirstName *string    `json:"preferredFirstName"`
	PreferredLastName  *string    `json:"preferredLastName"`
	Username           string     `json:"username,omitempty"`
	Email              string     `json:"email"`
	Active             bool       `json:"active"`
	EmployeeNumber     *string    `json:"employeeNumber"`
	Manager            *string    `json:"manager"`
	DateOfBirth        string     `json:"dateOfBirth"`
	StartDate          string     `json:"startDate"`
	EndDate            *string    `json:"endDate"`
	ExpiryDate         *string    `json:"expiryDate"`
	Timezone           string     `json:"timezone"`
	Country            string     `json:"country"`
	State              string     `json:"state"`
	Role               Role       `json:"role"`
	Mobile             string     `json:"mobile"`
	CustomData         CustomData `json:"customData"`
	Position           string     `json:"position"`
	Location           string     `json:"location"`
	Department         string     `json:"department"`
	LegalEntity        string     `json:"legalEntity"`
	ServiceStartDate   string     `json:"serviceStartDate"`
}

// OnboardingUser is a future hire. It shares the User shape without
// identifier and username.
type OnboardingUser User

// BankAccountAU is an Australian bank account.
type BankAccountAU struct {
	AccountName   string `json:"accountName"`
	BSB           int    `json:"bsb"`
	AccountNumber int    `json:"accountNumber"`
	IsPrimary     bool   `json:"isPrimary"`
	RateType      string `json:"rateType"`
	Value         int    `json:"value"`
}

// BankAccounts groups bank accounts per jurisdiction. Only AU is populated;
// the others serialize as null.
type BankAccounts struct {
	AU []BankAccountAU `json:"bankAccountsAU"`
	NZ json.RawMessage `json:"bankAccountsNZ"`
	GB json.RawMessage `json:"bankAccountsGB"`
}

// WithholdingDetailsAU is an Australian TFN declaration.
type WithholdingDetailsAU struct {
	TFN                     string  `json:"tfn"`
	ReasonNoTFN             *string `json:"reasonNoTfn"`
	PrimaryEmail            string  `json:"primaryEmail"`
	PreviousSurname         *string `json:"previousSurname"`
	BasisOfPayment          string  `json:"basisOfPayment"`
	IsAustralianResident    bool    `json:"isAustralianResident"`
	IsClaimTaxFreeThreshold bool    `json:"isClaimTaxFreeThreshold"`
	IsClaimPensionerOffset  bool    `json:"isClaimPensionerOffset"`
	IsClaimZoneOffset       bool    `json:"isClaimZoneOffset"`
	IsWorkingHolidayMaker   bool    `json:"isWorkingHolidayMaker"`
	VisaCountry             string  `json:"visaCountry"`
	HasSTLR                 bool    `json:"hasStlr"`
	IsSeasonalWorker        bool    `json:"isSeasonalWorker"`
	IsInformationCorrect    bool    `json:"isInformationCorrect"`
	DeclarationDate         string  `json:"declarationDate"`
	DeclarationDateTimezone string  `json:"declarationDateTimezone"`
}

// WithholdingDetails groups tax declarations per jurisdiction.
type WithholdingDetails struct {
	AU WithholdingDetailsAU `json:"withholdingDetailsAU"`
	NZ json.RawMessage      `json:"withholdingDetailsNZ"`
	GB json.RawMessage      `json:"withholdingDetailsGB"`
}

// RetirementFundAccountAU is an Australian superannuation account.
type RetirementFundAccountAU struct {
	SuperFundName    string  `json:"superFundName"`
	SuperFundType    string  `json:"superFundType"`
	ABN              string  `json:"abn"`
	MembershipNumber string  `json:"membershipNumber"`
	AccountName      string  `json:"accountName"`
	USI              string  `json:"usi"`
	BSB              *string `json:"bsb"`
	AccountNumber    *string `json:"accountNumber"`
	ESA              *string `json:"esa"`
}

// RetirementFundAccounts groups retirement accounts per jurisdiction.
type RetirementFundAccounts struct {
	AU RetirementFundAccountAU `json:"retirementFundAccountsAU"`
	NZ json.RawMessage         `json:"retirementFundAccountsNZ"`
	GB json.RawMessage         `json:"retirementFundAccountsGB"`
}

// TerminationDetails records why employment ended.
type TerminationDetails struct {
	TerminationDate string `json:"terminationDate"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
}

// EmergencyContact is a person to call on an employee's behalf.
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// Employee holds employment details. Its ID equals the ID of the User it
// was derived from.
type Employee struct {
	ID                     string                 `json:"id"`
	EmploymentType         EmploymentType         `json:"employmentType"`
	UnitsPerWeek           string                 `json:"unitsPerWeek"`
	Rate                   int                    `json:"rate"`
	RateType               RateType               `json:"rateType"`
	TerminationDate        *string                `json:"terminationDate"`
	PayCycle               string                 `json:"payCycle"`
	BankAccounts           BankAccounts           `json:"bankAccounts"`
	WithholdingDetails     WithholdingDetails     `json:"withholdingDetails"`
	RetirementFundAccounts RetirementFundAccounts `json:"retirementFundAccounts"`
	TerminationDetails     *TerminationDetails    `json:"terminationDetails"`
	EmergencyContacts      []EmergencyContact     `json:"emergencyContacts"`
}

// LeaveRequest is an application for leave. User and LeaveType serialize
// as path references such as /users/{id}.
type LeaveRequest struct {
	ID           string      `json:"id"`
	User         Ref         `json:"user"`
	StartDate    string      `json:"startDate"`
	EndDate      string      `json:"endDate"`
	CreatedDate  string      `json:"createdDate"`
	ModifiedDate string      `json:"modifiedDate"`
	Status       LeaveStatus `json:"status"`
	Hours        float64     `json:"hours"`
	LeaveType    Ref         `json:"leaveType"`
}

// Candidate is a job applicant. Position holds a position title, not an id.
type Candidate struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	HomePhone       string          `json:"homePhone"`
	Mobile          string          `json:"mobile"`
	Address         Address         `json:"address"`
	ApplicationDate string          `json:"applicationDate"`
	Status          CandidateStatus `json:"status"`
	Position        string          `json:"position"`
}

// Dataset holds every generated collection in generation order.
type Dataset struct {
	Departments     []Department
	Locations       []Location
	Positions       []Position
	LegalEntities   []LegalEntity
	PayrollCycles   []PayrollCycle
	LeaveTypes      []LeaveType
	Users           []User
	OnboardingUsers []OnboardingUser
	Employees       []Employee
	LeaveRequests   []LeaveRequest
	Candidates      []Candidate
}
