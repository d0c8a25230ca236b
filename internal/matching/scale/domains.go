package scale

import (
	"fmt"
	"slices"

	dErrors "matchmaker/pkg/domain-errors"
)

// Education is the highest completed level of schooling.
type Education string

const (
	EducationElementary Education = "ELEMENTARY_GRADUATE"
	EducationMiddle     Education = "MIDDLE_SCHOOL_GRADUATE"
	EducationHigh       Education = "HIGH_SCHOOL_GRADUATE"
	EducationAssociate  Education = "ASSOCIATE_DEGREE"
	EducationBachelor   Education = "BACHELOR_DEGREE"
	EducationMaster     Education = "MASTER_DEGREE"
	EducationDoctorate  Education = "DOCTORATE"
)

// Income is an annual income bracket in KRW.
type Income string

const (
	IncomeUnder30M   Income = "UNDER_30M"
	Income30MTo50M   Income = "30M_50M"
	Income50MTo70M   Income = "50M_70M"
	Income70MTo100M  Income = "70M_100M"
	Income100MTo150M Income = "100M_150M"
	Income150MTo200M Income = "150M_200M"
	IncomeOver200M   Income = "OVER_200M"
)

// Assets is a net assets bracket in KRW.
type Assets string

const (
	AssetsUnder100M  Assets = "UNDER_100M"
	Assets100MTo300M Assets = "100M_300M"
	Assets300MTo500M Assets = "300M_500M"
	Assets500MTo1B   Assets = "500M_1B"
	Assets1BTo3B     Assets = "1B_3B"
	Assets3BTo5B     Assets = "3B_5B"
	AssetsOver5B     Assets = "OVER_5B"
)

// BooksRead is the number of books read per year.
type BooksRead string

const (
	BooksReadNone   BooksRead = "NONE"
	BooksRead1To5   BooksRead = "1_5"
	BooksRead6To10  BooksRead = "6_10"
	BooksRead11To20 BooksRead = "11_20"
	BooksReadOver20 BooksRead = "OVER_20"
)

// Exercise is how often someone works out.
type Exercise string

const (
	ExerciseNone       Exercise = "NONE"
	ExerciseMonthly    Exercise = "MONTHLY"
	ExerciseWeekly1To2 Exercise = "WEEKLY_1_2"
	ExerciseWeekly3To4 Exercise = "WEEKLY_3_4"
	ExerciseDaily      Exercise = "DAILY"
)

// The declared orders. Lowest first.
var (
	Educations = newScale(DomainEducation,
		EducationElementary, EducationMiddle, EducationHigh,
		EducationAssociate, EducationBachelor, EducationMaster, EducationDoctorate,
	)
	Incomes = newScale(DomainIncome,
		IncomeUnder30M, Income30MTo50M, Income50MTo70M, Income70MTo100M,
		Income100MTo150M, Income150MTo200M, IncomeOver200M,
	)
	AssetBrackets = newScale(DomainAssets,
		AssetsUnder100M, Assets100MTo300M, Assets300MTo500M, Assets500MTo1B,
		Assets1BTo3B, Assets3BTo5B, AssetsOver5B,
	)
	BooksReadBrackets = newScale(DomainBooksRead,
		BooksReadNone, BooksRead1To5, BooksRead6To10, BooksRead11To20, BooksReadOver20,
	)
	ExerciseFrequencies = newScale(DomainExercise,
		ExerciseNone, ExerciseMonthly, ExerciseWeekly1To2, ExerciseWeekly3To4, ExerciseDaily,
	)
)

type ordered interface {
	Domain() Domain
	rank(raw string) (int, bool)
	names() []string
}

var registry = map[Domain]ordered{
	DomainEducation: Educations,
	DomainIncome:    Incomes,
	DomainAssets:    AssetBrackets,
	DomainBooksRead: BooksReadBrackets,
	DomainExercise:  ExerciseFrequencies,
}

// Domains lists every registered domain in a stable order.
func Domains() []Domain {
	out := make([]Domain, 0, len(registry))
	for d := range registry {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// Rank looks up a level's rank by domain name, for callers holding wire values.
func Rank(domain Domain, value string) (int, error) {
	s, err := lookup(domain)
	if err != nil {
		return 0, err
	}
	r, ok := s.rank(value)
	if !ok {
		return 0, unknownLevel(domain, value)
	}
	return r, nil
}

// AtOrAbove returns the levels of domain ranked at or above value, lowest first.
func AtOrAbove(domain Domain, value string) ([]string, error) {
	s, err := lookup(domain)
	if err != nil {
		return nil, err
	}
	r, ok := s.rank(value)
	if !ok {
		return nil, unknownLevel(domain, value)
	}
	return s.names()[r:], nil
}

// Levels returns the declared levels of domain, lowest first.
func Levels(domain Domain) ([]string, error) {
	s, err := lookup(domain)
	if err != nil {
		return nil, err
	}
	return s.names(), nil
}

func lookup(domain Domain) (ordered, error) {
	s, ok := registry[domain]
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown ordered domain %q", domain))
	}
	return s, nil
}

// UnmarshalText implementations reject values outside the declared order at
// the decoding boundary.

func (e *Education) UnmarshalText(b []byte) error { return decode(Educations, e, b) }
func (i *Income) UnmarshalText(b []byte) error    { return decode(Incomes, i, b) }
func (a *Assets) UnmarshalText(b []byte) error    { return decode(AssetBrackets, a, b) }
func (r *BooksRead) UnmarshalText(b []byte) error { return decode(BooksReadBrackets, r, b) }
func (x *Exercise) UnmarshalText(b []byte) error  { return decode(ExerciseFrequencies, x, b) }

func decode[T ~string](s *Scale[T], dst *T, b []byte) error {
	v, err := s.Parse(string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
