package models

// AdvisorRole is one of the fixed advisor role labels
type AdvisorRole string

const (
	AdvisorRoleFirstYear  AdvisorRole = "First Year Council Advisor"
	AdvisorRoleSecondYear AdvisorRole = "Second Year Council Advisor"
	AdvisorRoleThirdYear  AdvisorRole = "Third Year Council Advisor"
	AdvisorRoleFourthYear AdvisorRole = "Fourth Year Trustees Advisor"
)

// AdvisorRoles lists the advisor roles in display order
var AdvisorRoles = []AdvisorRole{
	AdvisorRoleFirstYear,
	AdvisorRoleSecondYear,
	AdvisorRoleThirdYear,
	AdvisorRoleFourthYear,
}

// MemberRole is a council member's role label
type MemberRole string

const (
	MemberRolePresident     MemberRole = "President"
	MemberRoleVicePresident MemberRole = "Vice President"
	MemberRoleTreasurer     MemberRole = "Treasurer"
	MemberRoleSecretary     MemberRole = "Secretary"
	MemberRoleChair         MemberRole = "Chair"
	MemberRoleMember        MemberRole = "Member"
)

// MemberRoles are the labels the role board offers
var MemberRoles = []MemberRole{
	MemberRolePresident,
	MemberRoleVicePresident,
	MemberRoleTreasurer,
	MemberRoleSecretary,
	MemberRoleChair,
	MemberRoleMember,
}

// AssignmentRoles are the labels a committee assignment can set
var AssignmentRoles = []MemberRole{MemberRoleChair, MemberRoleMember}

// EventStatus is the planning stage of an event
type EventStatus string

const (
	EventStatusDraft            EventStatus = "Draft"
	EventStatusPlanning         EventStatus = "Planning"
	EventStatusAwaitingApproval EventStatus = "Awaiting Approval"
	EventStatusApproved         EventStatus = "Approved"
)

// EventStatuses is ordered from first to last stage
var EventStatuses = []EventStatus{
	EventStatusDraft,
	EventStatusPlanning,
	EventStatusAwaitingApproval,
	EventStatusApproved,
}

// Rank returns the position of s in EventStatuses, or -1 when unknown
func (s EventStatus) Rank() int {
	for i, status := range EventStatuses {
		if status == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known status
func (s EventStatus) Valid() bool {
	return s.Rank() >= 0
}

// EnumValues converts a typed enum list to strings
func EnumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
