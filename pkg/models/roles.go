package models

// DriveRole pairs the human-facing Shared Drive role label with the gam ACL
// token used on the wire.
type DriveRole struct {
	Label string
	Token string
}

// DriveRoles is the canonical role scale for Shared Drive ACLs, ordered most
// restrictive first. This is the single mapping used for every drive variant.
var DriveRoles = []DriveRole{
	{Label: "Viewer", Token: "reader"},
	{Label: "Commenter", Token: "commenter"},
	{Label: "Contributor", Token: "writer"},
	{Label: "Content Manager", Token: "fileOrganizer"},
	{Label: "Organizer", Token: "organizer"},
}

// DriveRoleByLabel resolves a role label to its mapping entry.
func DriveRoleByLabel(label string) (DriveRole, bool) {
	for _, r := range DriveRoles {
		if r.Label == label {
			return r, true
		}
	}
	return DriveRole{}, false
}

// DriveRoleLabels returns the labels in scale order, for prompt menus.
func DriveRoleLabels() []string {
	labels := make([]string, 0, len(DriveRoles))
	for _, r := range DriveRoles {
		labels = append(labels, r.Label)
	}
	return labels
}

// GroupRole is a Google Group membership role token as gam expects it.
type GroupRole string

const (
	GroupOwner   GroupRole = "owner"
	GroupManager GroupRole = "manager"
	GroupMember  GroupRole = "member"
)
