package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriveID(t *testing.T) {
	lines := []string{
		"Creating Shared Drive...",
		"Shared Drive ID: 0AAxYzDrive1,",
		"Shared Drive ID: 0AAother",
	}
	// first match wins, trailing punctuation stripped
	assert.Equal(t, "0AAxYzDrive1", DriveID(lines))

	assert.Equal(t, "", DriveID([]string{"no id in here"}))
	assert.Equal(t, "", DriveID(nil))
}

func TestFileID(t *testing.T) {
	lines := []string{
		"Copying folder...",
		"  id: 1FooBarCopied",
		"  id: 1Second",
	}
	assert.Equal(t, "1FooBarCopied", FileID(lines))
	assert.Equal(t, "", FileID([]string{"nothing"}))
}

func TestFileItems(t *testing.T) {
	lines := []string{
		"Owner: admin@x.com",
		"id: 1AAA name: Finance",
		"id: 1BBB name: Design Assets ",
		"id: 1CCC",     // no name, skipped
		"name: Orphan", // no id, skipped
	}
	items := FileItems(lines)
	require.Len(t, items, 2)
	assert.Equal(t, FileItem{ID: "1AAA", Name: "Finance"}, items[0])
	assert.Equal(t, "Design Assets", items[1].Name)
}

func TestCheckSettings(t *testing.T) {
	lines := []string{
		"Group: g@x.com",
		" whoCanJoin: INVITED_CAN_JOIN",
		" allowExternalMembers: False",
	}
	got := CheckSettings(lines, map[string]string{
		"whoCanJoin":           "INVITED_CAN_JOIN",
		"allowExternalMembers": "false",
	})
	assert.True(t, got["whoCanJoin"])
	assert.True(t, got["allowExternalMembers"], "comparison is case-insensitive")

	got = CheckSettings(lines, map[string]string{
		"whoCanJoin":    "ALL_IN_DOMAIN_CAN_JOIN",
		"whoCanContact": "ANYONE_CAN_CONTACT",
	})
	assert.False(t, got["whoCanJoin"], "wrong token")
	assert.False(t, got["whoCanContact"], "label never appears")
}

func TestManagerEmail(t *testing.T) {
	lines := []string{
		"primaryEmail,relations.type,relations.value",
		"leaver@x.com,manager,boss@x.com",
	}
	assert.Equal(t, "boss@x.com", ManagerEmail(lines))

	// header only, nothing to extract
	assert.Equal(t, "", ManagerEmail([]string{"primaryEmail,relations.type,relations.value"}))
	// record without an address in the last column
	assert.Equal(t, "", ManagerEmail([]string{"header", "leaver@x.com,manager,"}))
}

func TestOwnedGroups(t *testing.T) {
	lines := []string{
		"email,role",
		"team-a@x.com,OWNER",
		"",
		"team-b@x.com,OWNER",
	}
	assert.Equal(t, []string{"team-a@x.com", "team-b@x.com"}, OwnedGroups(lines))
	assert.Empty(t, OwnedGroups([]string{"email,role"}))
}
