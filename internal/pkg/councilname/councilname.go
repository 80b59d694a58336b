// Package councilname derives a council's display name from its graduation
// year and the spring year of the academic year it serves.
package councilname

// Display names by years remaining until graduation.
const (
	FourthYearTrustees = "Fourth Year Trustees"
	ThirdYearCouncil   = "Third Year Council"
	SecondYearCouncil  = "Second Year Council"
	FirstYearCouncil   = "First Year Council"
	Unknown            = "Unknown council"
)

// ResolveSpring returns the spring year when given, otherwise the year after
// fall. Nil when neither is known.
func ResolveSpring(fall, spring *int) *int {
	if spring != nil {
		s := *spring
		return &s
	}
	if fall != nil {
		s := *fall + 1
		return &s
	}
	return nil
}

// ResolveFall is the inverse of ResolveSpring.
func ResolveFall(fall, spring *int) *int {
	if fall != nil {
		f := *fall
		return &f
	}
	if spring != nil {
		f := *spring - 1
		return &f
	}
	return nil
}

// Name returns "" when the name is not yet computable.
func Name(gradYear int, spring *int) string {
	if gradYear <= 0 || spring == nil {
		return ""
	}

	switch gradYear - *spring {
	case 0:
		return FourthYearTrustees
	case 1:
		return ThirdYearCouncil
	case 2:
		return SecondYearCouncil
	case 3:
		return FirstYearCouncil
	default:
		return Unknown
	}
}

// FromYears combines ResolveSpring and Name.
func FromYears(gradYear int, fall, spring *int) string {
	return Name(gradYear, ResolveSpring(fall, spring))
}
