package dataset

import (
	"fmt"
	"strings"
)

var (
	fakeFirstNames = []string{
		"Olivia", "Jack", "Charlotte", "Noah", "Amelia", "William", "Isla", "Oliver",
		"Mia", "Thomas", "Ava", "James", "Grace", "Lucas", "Chloe", "Henry",
		"Sophie", "Leo", "Matilda", "Ethan", "Zoe", "Samuel", "Ruby", "Harrison",
		"Ella", "Liam", "Harper", "Archie", "Evie", "Oscar", "Lily", "Mason",
		"Aisha", "Hiroshi", "Priya", "Mateo", "Ngaio", "Ravi", "Mei", "Tane",
	}
	fakeLastNames = []string{
		"Smith", "Jones", "Williams", "Brown", "Wilson", "Taylor", "Johnson", "White",
		"Martin", "Anderson", "Thompson", "Nguyen", "Thomas", "Walker", "Harris", "Lee",
		"Ryan", "Robinson", "Kelly", "King", "Davis", "Wright", "Evans", "Roberts",
		"Green", "Hall", "Wood", "Jackson", "Clarke", "Patel", "Khan", "Singh",
		"Chen", "Wang", "Murphy", "OConnor", "Campbell", "Stewart", "Scott", "Morris",
	}
	fakeStreetNames = []string{
		"George", "Collins", "Queen", "King", "Elizabeth", "Bourke", "Pitt", "Hunter",
		"Flinders", "Swanston", "Adelaide", "Murray", "Victoria", "Station", "Church", "High",
		"Park", "Railway", "Beach", "Hill",
	}
	fakeStreetSuffixes = []string{"Street", "Road", "Avenue", "Lane", "Parade", "Drive", "Terrace", "Place", "Crescent", "Way"}
	fakeSecondary      = []string{"Apt. ###", "Suite ###", "Level ##", "Unit ##"}
	fakeSuburbs        = []string{
		"Parramatta", "Chatswood", "Bondi", "Newtown", "Fitzroy", "Richmond", "St Kilda", "Carlton",
		"Fortitude Valley", "South Bank", "Fremantle", "Subiaco", "Glenelg", "Norwood", "Braddon", "Kingston",
		"Battery Point", "Sandy Bay", "Nightcliff", "Ponsonby",
	}
	fakeStates = []string{
		"New South Wales", "Victoria", "Queensland", "Western Australia", "South Australia",
		"Tasmania", "Australian Capital Territory", "Northern Territory",
	}
	fakePhoneFormats = []string{"04## ### ###", "(02) #### ####", "(03) #### ####", "(07) #### ####", "(08) #### ####", "+61 4## ### ###"}
	fakeCompanyTails = []string{"Pty Ltd", "Group", "and Sons", "Holdings", "Partners", "Industries", "Consulting", "Solutions"}
	fakeMailDomains  = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "bigpond.com"}
)

// faker draws plausible personal and business values from the word bank.
type faker struct {
	rnd
}

func (f faker) firstName() string { return pick(f.rnd, fakeFirstNames) }

func (f faker) lastName() string { return pick(f.rnd, fakeLastNames) }

func (f faker) fullName() string { return f.firstName() + " " + f.lastName() }

func (f faker) streetAddress() string {
	return fmt.Sprintf("%d %s %s", f.between(1, 999), pick(f.rnd, fakeStreetNames), pick(f.rnd, fakeStreetSuffixes))
}

func (f faker) secondaryAddress() string { return f.pattern(pick(f.rnd, fakeSecondary)) }

func (f faker) suburb() string { return pick(f.rnd, fakeSuburbs) }

func (f faker) state() string { return pick(f.rnd, fakeStates) }

func (f faker) postcode() string { return f.pattern("####") }

func (f faker) phone() string { return f.pattern(pick(f.rnd, fakePhoneFormats)) }

func (f faker) company() string {
	switch f.intN(3) {
	case 0:
		return f.lastName() + " " + pick(f.rnd, fakeCompanyTails)
	case 1:
		return f.lastName() + " - " + f.lastName()
	default:
		return fmt.Sprintf("%s, %s and %s", f.lastName(), f.lastName(), f.lastName())
	}
}

// emailFor builds a mailbox name from a person's name. The result is not
// lower-cased.
func (f faker) emailFor(first, last string) string {
	local := first + "." + last
	switch f.intN(3) {
	case 0:
		local = first + "_" + last
	case 1:
		local = fmt.Sprintf("%s.%s%d", first, last, f.intN(100))
	}
	return strings.ReplaceAll(local, " ", "") + "@" + pick(f.rnd, fakeMailDomains)
}

func (f faker) email() string { return f.emailFor(f.firstName(), f.lastName()) }

func (f faker) address(withLine2 bool) Address {
	a := Address{AddressLine1: f.streetAddress()}
	if withLine2 {
		a.AddressLine2 = f.secondaryAddress()
	}
	a.Suburb = f.suburb()
	a.State = f.state()
	a.Postcode = f.postcode()
	a.Country = "AU"
	return a
}
