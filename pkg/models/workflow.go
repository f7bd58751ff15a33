package models

// Drive labels for the created-resource map.
const (
	DriveMain     = "main"
	DriveExternal = "external"
	DriveGdpr     = "gdpr"
)

// DriveNameSuffix returns the display-name suffix for a drive label.
func DriveNameSuffix(label string) string {
	switch label {
	case DriveExternal:
		return " (External)"
	case DriveGdpr:
		return " (GDPR)"
	}
	return ""
}

type DriveOptions struct {
	OperatorEmail string `validate:"required,email"`
	Name          string `validate:"required"`
	CopyTemplate  bool
	RemoveSelf    bool
}

type GroupJoinPolicy string

const (
	JoinInvited  GroupJoinPolicy = "invited"
	JoinApproval GroupJoinPolicy = "approval"
	JoinAnyone   GroupJoinPolicy = "anyone"
)

// Token returns the gam whocanjoin value for the policy.
func (p GroupJoinPolicy) Token() string {
	switch p {
	case JoinAnyone:
		return "ALL_IN_DOMAIN_CAN_JOIN"
	case JoinApproval:
		return "CAN_REQUEST_TO_JOIN"
	default:
		return "INVITED_CAN_JOIN"
	}
}

type GroupOptions struct {
	OperatorEmail string `validate:"required,email"`
	GroupEmail    string `validate:"required,email"`
	Name          string `validate:"required"`
	Description   string
	Owners        []string `validate:"dive,email"`
	Managers      []string `validate:"dive,email"`
	Members       []string `validate:"dive,email"`
	Join          GroupJoinPolicy `validate:"omitempty,oneof=invited approval anyone"`
	AllowExternal bool
	Matrix        *PermissionMatrix
}

type OffboardOptions struct {
	Users []string `validate:"required,min=1,dive,email"`
}

// MemberSet is one round of member collection: a role plus the addresses it
// was granted to. Recorded on the main drive for replay onto the variants.
type MemberSet struct {
	Role      DriveRole
	Addresses []string
}

// DriveState is the per-session record of a drive workflow run. Owned
// exclusively by the orchestrating goroutine and discarded at workflow end.
type DriveState struct {
	BaseName    string
	DriveIDs    map[string]string
	Order       []string
	MainMembers []MemberSet
}

func NewDriveState(baseName string) *DriveState {
	return &DriveState{
		BaseName: baseName,
		DriveIDs: make(map[string]string),
	}
}

// Record stores a created drive's identifier, preserving creation order for
// the summary.
func (s *DriveState) Record(label, id string) {
	if _, seen := s.DriveIDs[label]; !seen {
		s.Order = append(s.Order, label)
	}
	s.DriveIDs[label] = id
}

// DriveSummaryEntry is one row of the end-of-workflow report.
type DriveSummaryEntry struct {
	Label string
	Name  string
	ID    string
	URL   string
}

// Summary lists every created drive in creation order with its constructed
// browser URL. Partial runs report whatever was actually created.
func (s *DriveState) Summary() []DriveSummaryEntry {
	var entries []DriveSummaryEntry
	for _, label := range s.Order {
		id := s.DriveIDs[label]
		entries = append(entries, DriveSummaryEntry{
			Label: label,
			Name:  s.BaseName + DriveNameSuffix(label),
			ID:    id,
			URL:   "https://drive.google.com/drive/folders/" + id,
		})
	}
	return entries
}

// OffboardResult is the per-user outcome of an offboarding run.
type OffboardResult struct {
	User              string
	Manager           string
	TransferredGroups []string
	Warnings          []string
	StepsCompleted    int
}
