package models

import (
	"fmt"
	"slices"

	dErrors "matchmaker/pkg/domain-errors"
)

// Region is the candidate's home region.
type Region string

const (
	RegionSeoul       Region = "SEOUL"
	RegionGyeonggi    Region = "GYEONGGI"
	RegionIncheon     Region = "INCHEON"
	RegionGangwon     Region = "GANGWON"
	RegionChungcheong Region = "CHUNGCHEONG"
	RegionDaejeon     Region = "DAEJEON"
	RegionJeolla      Region = "JEOLLA"
	RegionGwangju     Region = "GWANGJU"
	RegionGyeongsang  Region = "GYEONGSANG"
	RegionDaegu       Region = "DAEGU"
	RegionBusan       Region = "BUSAN"
	RegionUlsan       Region = "ULSAN"
	RegionJeju        Region = "JEJU"
	RegionOverseas    Region = "OVERSEAS"
)

// BodyShape is a self-described build.
type BodyShape string

const (
	BodyShapeSlim     BodyShape = "SLIM"
	BodyShapeAverage  BodyShape = "AVERAGE"
	BodyShapeAthletic BodyShape = "ATHLETIC"
	BodyShapeMuscular BodyShape = "MUSCULAR"
	BodyShapeCurvy    BodyShape = "CURVY"
	BodyShapeChubby   BodyShape = "CHUBBY"
)

// EyelidType is a facial attribute some members state preferences about.
type EyelidType string

const (
	EyelidSingle      EyelidType = "SINGLE"
	EyelidDouble      EyelidType = "DOUBLE"
	EyelidInnerDouble EyelidType = "INNER_DOUBLE"
)

// OccupationStatus is the candidate's employment situation.
type OccupationStatus string

const (
	OccupationEmployee     OccupationStatus = "EMPLOYEE"
	OccupationProfessional OccupationStatus = "PROFESSIONAL"
	OccupationCivilServant OccupationStatus = "CIVIL_SERVANT"
	OccupationSelfEmployed OccupationStatus = "SELF_EMPLOYED"
	OccupationFreelancer   OccupationStatus = "FREELANCER"
	OccupationStudent      OccupationStatus = "STUDENT"
	OccupationJobSeeking   OccupationStatus = "JOB_SEEKING"
	OccupationUnemployed   OccupationStatus = "UNEMPLOYED"
)

// MBTI is a Myers-Briggs type code.
type MBTI string

const (
	MBTIINTJ MBTI = "INTJ"
	MBTIINTP MBTI = "INTP"
	MBTIENTJ MBTI = "ENTJ"
	MBTIENTP MBTI = "ENTP"
	MBTIINFJ MBTI = "INFJ"
	MBTIINFP MBTI = "INFP"
	MBTIENFJ MBTI = "ENFJ"
	MBTIENFP MBTI = "ENFP"
	MBTIISTJ MBTI = "ISTJ"
	MBTIISFJ MBTI = "ISFJ"
	MBTIESTJ MBTI = "ESTJ"
	MBTIESFJ MBTI = "ESFJ"
	MBTIISTP MBTI = "ISTP"
	MBTIISFP MBTI = "ISFP"
	MBTIESTP MBTI = "ESTP"
	MBTIESFP MBTI = "ESFP"
)

// Religion is the candidate's stated religion.
type Religion string

const (
	ReligionNone      Religion = "NONE"
	ReligionChristian Religion = "CHRISTIAN"
	ReligionCatholic  Religion = "CATHOLIC"
	ReligionBuddhist  Religion = "BUDDHIST"
	ReligionOther     Religion = "OTHER"
)

// DrinkingFrequency is how often someone drinks. Preferences about it are
// advisory only, so it is an unordered enumeration rather than a scale.
type DrinkingFrequency string

const (
	DrinkingNever    DrinkingFrequency = "NEVER"
	DrinkingRarely   DrinkingFrequency = "RARELY"
	DrinkingMonthly  DrinkingFrequency = "MONTHLY"
	DrinkingWeekly   DrinkingFrequency = "WEEKLY"
	DrinkingFrequent DrinkingFrequency = "FREQUENT"
)

type enum[T ~string] struct {
	name   string
	values []T
}

func newEnum[T ~string](name string, values ...T) enum[T] {
	return enum[T]{name: name, values: values}
}

func (e enum[T]) contains(v T) bool { return slices.Contains(e.values, v) }

func (e enum[T]) decode(dst *T, b []byte) error {
	v := T(b)
	if !e.contains(v) {
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown %s %q", e.name, string(b)))
	}
	*dst = v
	return nil
}

var (
	regions = newEnum("region",
		RegionSeoul, RegionGyeonggi, RegionIncheon, RegionGangwon, RegionChungcheong,
		RegionDaejeon, RegionJeolla, RegionGwangju, RegionGyeongsang, RegionDaegu,
		RegionBusan, RegionUlsan, RegionJeju, RegionOverseas,
	)
	bodyShapes = newEnum("body shape",
		BodyShapeSlim, BodyShapeAverage, BodyShapeAthletic, BodyShapeMuscular, BodyShapeCurvy, BodyShapeChubby,
	)
	eyelidTypes = newEnum("eyelid type",
		EyelidSingle, EyelidDouble, EyelidInnerDouble,
	)
	occupationStatuses = newEnum("occupation status",
		OccupationEmployee, OccupationProfessional, OccupationCivilServant, OccupationSelfEmployed,
		OccupationFreelancer, OccupationStudent, OccupationJobSeeking, OccupationUnemployed,
	)
	mbtiTypes = newEnum("MBTI type",
		MBTIINTJ, MBTIINTP, MBTIENTJ, MBTIENTP, MBTIINFJ, MBTIINFP, MBTIENFJ, MBTIENFP,
		MBTIISTJ, MBTIISFJ, MBTIESTJ, MBTIESFJ, MBTIISTP, MBTIISFP, MBTIESTP, MBTIESFP,
	)
	religions = newEnum("religion",
		ReligionNone, ReligionChristian, ReligionCatholic, ReligionBuddhist, ReligionOther,
	)
	drinkingFrequencies = newEnum("drinking frequency",
		DrinkingNever, DrinkingRarely, DrinkingMonthly, DrinkingWeekly, DrinkingFrequent,
	)
)

func (r *Region) UnmarshalText(b []byte) error            { return regions.decode(r, b) }
func (s *BodyShape) UnmarshalText(b []byte) error         { return bodyShapes.decode(s, b) }
func (e *EyelidType) UnmarshalText(b []byte) error        { return eyelidTypes.decode(e, b) }
func (o *OccupationStatus) UnmarshalText(b []byte) error  { return occupationStatuses.decode(o, b) }
func (m *MBTI) UnmarshalText(b []byte) error              { return mbtiTypes.decode(m, b) }
func (r *Religion) UnmarshalText(b []byte) error          { return religions.decode(r, b) }
func (d *DrinkingFrequency) UnmarshalText(b []byte) error { return drinkingFrequencies.decode(d, b) }

// Valid reports whether the value belongs to its enumeration. Used when
// records are built in code rather than decoded.
func (r Region) Valid() bool            { return regions.contains(r) }
func (s BodyShape) Valid() bool         { return bodyShapes.contains(s) }
func (e EyelidType) Valid() bool        { return eyelidTypes.contains(e) }
func (o OccupationStatus) Valid() bool  { return occupationStatuses.contains(o) }
func (m MBTI) Valid() bool              { return mbtiTypes.contains(m) }
func (r Religion) Valid() bool          { return religions.contains(r) }
func (d DrinkingFrequency) Valid() bool { return drinkingFrequencies.contains(d) }

// Declared values of each enumeration, for forms and fixtures.
func Regions() []Region                        { return slices.Clone(regions.values) }
func BodyShapes() []BodyShape                  { return slices.Clone(bodyShapes.values) }
func EyelidTypes() []EyelidType                { return slices.Clone(eyelidTypes.values) }
func OccupationStatuses() []OccupationStatus   { return slices.Clone(occupationStatuses.values) }
func MBTITypes() []MBTI                        { return slices.Clone(mbtiTypes.values) }
func Religions() []Religion                    { return slices.Clone(religions.values) }
func DrinkingFrequencies() []DrinkingFrequency { return slices.Clone(drinkingFrequencies.values) }
