package model

// LesionCategory is the fine-grained clinical category assigned to a
// filtered diagnosis.
type LesionCategory string

const (
	CategoryMelanoma     LesionCategory = "Melanoma"
	CategoryBasalCell    LesionCategory = "Basal Cell Carcinoma"
	CategorySquamousCell LesionCategory = "Squamous Cell Carcinoma"
	CategoryPrecancerous LesionCategory = "Precancerous Lesion"
	CategoryUncertain    LesionCategory = "Uncertain/Suspicious Lesion"
	CategoryOther        LesionCategory = "Other"
)

// ReportGroup is the coarse bucket used for headline reporting.
type ReportGroup string

const (
	GroupMelanoma     ReportGroup = "Melanoma"
	GroupNMSC         ReportGroup = "NMSC"
	GroupPrecancerous ReportGroup = "Precancerous"
	GroupOther        ReportGroup = "Other"
)

// TrackedGroups lists the groups reported in the group summary, in canonical
// order. Other is excluded from that view on purpose.
var TrackedGroups = []ReportGroup{GroupPrecancerous, GroupNMSC, GroupMelanoma}

// GroupFor maps a lesion category to its report group. The mapping is total:
// anything outside the three tracked categories lands in Other.
func GroupFor(c LesionCategory) ReportGroup {
	switch c {
	case CategoryMelanoma:
		return GroupMelanoma
	case CategoryBasalCell, CategorySquamousCell:
		return GroupNMSC
	case CategoryPrecancerous:
		return GroupPrecancerous
	default:
		return GroupOther
	}
}
