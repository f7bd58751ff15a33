// Package parse extracts structured facts from gam's line-oriented text
// output. Everything here is a pure function over a captured line history:
// extra or reordered lines are tolerated, and a missing label simply yields
// the zero value.
package parse

import (
	"regexp"
	"strings"
)

var (
	driveIDRe  = regexp.MustCompile(`Shared Drive ID:\s*(\S+)`)
	fileIDRe   = regexp.MustCompile(`id: (\S+)`)
	fileNameRe = regexp.MustCompile(`name: (.+)$`)
)

// DriveID returns the identifier from the first "Shared Drive ID: <token>"
// line, with trailing punctuation stripped, or "" when no line matches.
func DriveID(lines []string) string {
	for _, line := range lines {
		if m := driveIDRe.FindStringSubmatch(line); m != nil {
			return strings.TrimRight(m[1], ",.")
		}
	}
	return ""
}

// FileID returns the first "id: <token>" value, used to locate the copied
// template container in copy-drivefile output.
func FileID(lines []string) string {
	for _, line := range lines {
		if m := fileIDRe.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}

// FileItem is one entry of a filelist listing.
type FileItem struct {
	ID   string
	Name string
}

// FileItems pairs up "id:" and "name:" labels from show-filelist output.
// Both labels must appear on the same line for an item to be recorded.
func FileItems(lines []string) []FileItem {
	var items []FileItem
	for _, line := range lines {
		idMatch := fileIDRe.FindStringSubmatch(line)
		nameMatch := fileNameRe.FindStringSubmatch(line)
		if idMatch != nil && nameMatch != nil {
			items = append(items, FileItem{
				ID:   idMatch[1],
				Name: strings.TrimSpace(nameMatch[1]),
			})
		}
	}
	return items
}

// CheckSettings verifies that each expected token appears within the line
// carrying its label ("whoCanJoin: INVITED_CAN_JOIN"). A label that never
// appears reports false; comparison is case-insensitive because gam's
// casing of boolean values varies across versions.
func CheckSettings(lines []string, expect map[string]string) map[string]bool {
	verified := make(map[string]bool, len(expect))
	for key := range expect {
		verified[key] = false
	}
	for _, line := range lines {
		for key, token := range expect {
			if !strings.Contains(line, key+":") {
				continue
			}
			if strings.Contains(strings.ToLower(line), strings.ToLower(token)) {
				verified[key] = true
			}
		}
	}
	return verified
}

// csvRecords splits gam "print" output into CSV records, skipping the
// header row. gam emits plain comma-separated values with no quoting for
// the entity fields we read.
func csvRecords(lines []string) [][]string {
	var records [][]string
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, strings.Split(line, ","))
	}
	return records
}

// ManagerEmail extracts the manager's address from "user X print manager"
// output (primaryEmail, relation, value columns, manager address last).
func ManagerEmail(lines []string) string {
	for _, rec := range csvRecords(lines) {
		addr := strings.TrimSpace(rec[len(rec)-1])
		if strings.Contains(addr, "@") {
			return addr
		}
	}
	return ""
}

// OwnedGroups extracts group addresses from "user X print groups roles
// owner" output. The group address is the first column of each record.
func OwnedGroups(lines []string) []string {
	var groups []string
	for _, rec := range csvRecords(lines) {
		addr := strings.TrimSpace(rec[0])
		if strings.Contains(addr, "@") {
			groups = append(groups, addr)
		}
	}
	return groups
}
