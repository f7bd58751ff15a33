package models

// Capability rows of the group access matrix.
const (
	CapContactOwners = iota
	CapViewConversations
	CapPost
	CapViewMembers
	CapManageMembers

	MatrixRows = 5
)

// Audience columns, least to most permissive.
const (
	AudOwners = iota
	AudManagers
	AudMembers
	AudDomain
	AudExternal

	MatrixCols = 5
)

// AudienceLabels index by audience column.
var AudienceLabels = []string{"owners", "managers", "members", "domain", "external"}

// AudienceByLabel resolves an audience label to its column index.
func AudienceByLabel(label string) (int, bool) {
	for i, l := range AudienceLabels {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

// matrixSetting is one capability row's translation table: a gam settings key
// and one token per audience column, ordered least to most permissive so the
// highest checked column indexes its token directly.
type matrixSetting struct {
	Setting string
	Values  [MatrixCols]string
}

var matrixSettings = [MatrixRows]matrixSetting{
	{
		Setting: "whocancontactowner",
		Values: [MatrixCols]string{
			"ALL_OWNERS_CAN_CONTACT",
			"ALL_MANAGERS_CAN_CONTACT",
			"ALL_MEMBERS_CAN_CONTACT",
			"ALL_IN_DOMAIN_CAN_CONTACT",
			"ANYONE_CAN_CONTACT",
		},
	},
	{
		Setting: "whocanviewgroup",
		Values: [MatrixCols]string{
			"ALL_OWNERS_CAN_VIEW",
			"ALL_MANAGERS_CAN_VIEW",
			"ALL_MEMBERS_CAN_VIEW",
			"ALL_IN_DOMAIN_CAN_VIEW",
			"ANYONE_CAN_VIEW",
		},
	},
	{
		Setting: "whocanpostmessage",
		Values: [MatrixCols]string{
			"ALL_OWNERS_CAN_POST",
			"ALL_MANAGERS_CAN_POST",
			"ALL_MEMBERS_CAN_POST",
			"ALL_IN_DOMAIN_CAN_POST",
			"ANYONE_CAN_POST",
		},
	},
	{
		Setting: "whocanviewmembership",
		Values: [MatrixCols]string{
			"ALL_OWNERS_CAN_VIEW",
			"ALL_MANAGERS_CAN_VIEW",
			"ALL_MEMBERS_CAN_VIEW",
			"ALL_IN_DOMAIN_CAN_VIEW",
			"", // external column is structurally invalid for this row
		},
	},
	{
		Setting: "whocanmodifymembers",
		Values: [MatrixCols]string{
			"OWNERS_ONLY",
			"OWNERS_AND_MANAGERS",
			"ALL_MEMBERS",
			"", // domain and external columns are structurally invalid
			"",
		},
	},
}

// PermissionMatrix is the 5x5 group access grid. Checked cells always form a
// prefix of each row's audience scale; SetChecked enforces the sliding-scale
// rule on every mutation.
type PermissionMatrix struct {
	cells [MatrixRows][MatrixCols]bool
}

// NewPermissionMatrix returns the matrix with the stock defaults: every
// audience up to the whole organisation allowed, external disallowed, and
// member management limited to owners and managers.
func NewPermissionMatrix() *PermissionMatrix {
	m := &PermissionMatrix{}
	for row := 0; row < MatrixRows; row++ {
		for col := 0; col < MatrixCols; col++ {
			if !ValidCell(row, col) || col == AudExternal {
				continue
			}
			if row == CapManageMembers && col == AudMembers {
				continue
			}
			m.cells[row][col] = true
		}
	}
	return m
}

// ValidCell reports whether the (row, col) combination exists in the grid.
// Domain-level member management and external access to membership data have
// no corresponding Workspace setting.
func ValidCell(row, col int) bool {
	if col == AudDomain && row == CapManageMembers {
		return false
	}
	if col == AudExternal && row >= CapViewMembers {
		return false
	}
	return true
}

// MandatoryCell reports whether the cell is forced on: owner-level access
// cannot be revoked for any capability except posting.
func MandatoryCell(row, col int) bool {
	return col == AudOwners && row != CapPost
}

func (m *PermissionMatrix) Checked(row, col int) bool {
	if !ValidCell(row, col) {
		return false
	}
	return m.cells[row][col]
}

// SetChecked flips a cell and applies the sliding scale: checking a column
// checks every less-permissive column to its left, unchecking clears every
// more-permissive column to its right. Mandatory cells cannot be cleared.
// Repeated application is idempotent.
func (m *PermissionMatrix) SetChecked(row, col int, checked bool) error {
	if row < 0 || row >= MatrixRows || col < 0 || col >= MatrixCols || !ValidCell(row, col) {
		return ErrInvalidCell
	}
	if checked {
		for c := 0; c <= col; c++ {
			if ValidCell(row, c) {
				m.cells[row][c] = true
			}
		}
		return nil
	}
	if MandatoryCell(row, col) {
		return nil
	}
	for c := col; c < MatrixCols; c++ {
		if ValidCell(row, c) {
			m.cells[row][c] = false
		}
	}
	return nil
}

// SetAudience pins a row's most permissive audience to exactly col:
// everything up to col is checked, everything beyond it cleared.
func (m *PermissionMatrix) SetAudience(row, col int) error {
	if err := m.SetChecked(row, col, true); err != nil {
		return err
	}
	for c := col + 1; c < MatrixCols; c++ {
		if ValidCell(row, c) && !MandatoryCell(row, c) {
			m.cells[row][c] = false
		}
	}
	return nil
}

// HighestAllowed returns the most permissive checked column for a row, 0 when
// nothing beyond the owner column is checked.
func (m *PermissionMatrix) HighestAllowed(row int) int {
	highest := 0
	for col := 0; col < MatrixCols; col++ {
		if ValidCell(row, col) && m.cells[row][col] {
			highest = col
		}
	}
	return highest
}

// SettingsArgs translates the matrix into gam "update group" key/value
// argument pairs, one setting per capability row.
func (m *PermissionMatrix) SettingsArgs() []string {
	var args []string
	for row := 0; row < MatrixRows; row++ {
		highest := m.HighestAllowed(row)
		value := matrixSettings[row].Values[highest]
		if value == "" {
			continue
		}
		args = append(args, matrixSettings[row].Setting, value)
	}
	return args
}
