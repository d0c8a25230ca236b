package models

import (
	"fmt"

	dErrors "matchmaker/pkg/domain-errors"
)

// ConditionKind names one kind of partner preference a deal-breaker can refer to.
type ConditionKind string

const (
	KindAgeRange            ConditionKind = "age_range"
	KindRegion              ConditionKind = "region"
	KindHeightRange         ConditionKind = "height_range"
	KindBodyShape           ConditionKind = "body_shape"
	KindEyelidType          ConditionKind = "eyelid_type"
	KindFacialFeature       ConditionKind = "facial_feature"
	KindEducation           ConditionKind = "education"
	KindSchoolTier          ConditionKind = "school_tier"
	KindOccupationStatus    ConditionKind = "occupation_status"
	KindDisfavoredWorkplace ConditionKind = "disfavored_workplace"
	KindDisfavoredJob       ConditionKind = "disfavored_job"
	KindPreferredMBTI       ConditionKind = "preferred_mbti"
	KindDisfavoredMBTI      ConditionKind = "disfavored_mbti"
	KindSmoking             ConditionKind = "smoking"
	KindDrinking            ConditionKind = "drinking"
	KindPreferredReligion   ConditionKind = "preferred_religion"
	KindDisfavoredReligion  ConditionKind = "disfavored_religion"
	KindIncome              ConditionKind = "income"
	KindAssets              ConditionKind = "assets"
	KindHobby               ConditionKind = "hobby"
	KindBooksRead           ConditionKind = "books_read"
	KindCharacteristics     ConditionKind = "characteristics"
	KindTattoo              ConditionKind = "tattoo"
	KindExercise            ConditionKind = "exercise"
	KindCar                 ConditionKind = "car"
	KindGaming              ConditionKind = "gaming"
	KindPet                 ConditionKind = "pet"
)

// AllConditionKinds is the closed catalog, in the order forms present it.
var AllConditionKinds = []ConditionKind{
	KindAgeRange, KindRegion, KindHeightRange, KindBodyShape, KindEyelidType,
	KindFacialFeature, KindEducation, KindSchoolTier, KindOccupationStatus,
	KindDisfavoredWorkplace, KindDisfavoredJob, KindPreferredMBTI, KindDisfavoredMBTI,
	KindSmoking, KindDrinking, KindPreferredReligion, KindDisfavoredReligion,
	KindIncome, KindAssets, KindHobby, KindBooksRead, KindCharacteristics,
	KindTattoo, KindExercise, KindCar, KindGaming, KindPet,
}

var knownKinds = func() map[ConditionKind]struct{} {
	m := make(map[ConditionKind]struct{}, len(AllConditionKinds))
	for _, k := range AllConditionKinds {
		m[k] = struct{}{}
	}
	return m
}()

// IsKnown reports whether k belongs to the catalog.
func (k ConditionKind) IsKnown() bool {
	_, ok := knownKinds[k]
	return ok
}

// ParseConditionKind validates a kind read from storage or a request.
//
// Usage: call at trust boundaries so schema drift fails at decoding, not
// during evaluation.
func ParseConditionKind(s string) (ConditionKind, error) {
	k := ConditionKind(s)
	if !k.IsKnown() {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown condition kind %q", s))
	}
	return k, nil
}

// UnmarshalText rejects kinds outside the catalog.
func (k *ConditionKind) UnmarshalText(b []byte) error {
	parsed, err := ParseConditionKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
