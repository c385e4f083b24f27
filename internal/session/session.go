// Package session models the named QA sessions a collection check run can
// execute, and resolves a requested session list into the final ordered
// execution list: dependencies expanded depth-first, duplicates removed, and
// dependency cycles rejected.
package session

import (
	"fmt"
	"strings"
)

// GroupKind is the named check group a session belongs to.
type GroupKind string

const (
	GroupFormatters GroupKind = "formatters"
	GroupCodeQA     GroupKind = "codeqa"
	GroupTyping     GroupKind = "typing"
	GroupDocs       GroupKind = "docs"
	GroupLicense    GroupKind = "license"
	GroupExtra      GroupKind = "extra"
	GroupBuild      GroupKind = "build"
	GroupCustom     GroupKind = "custom"
)

// ParseGroupKind maps a configured group name to its GroupKind. The empty
// string maps to GroupCustom.
func ParseGroupKind(raw string) (GroupKind, error) {
	switch GroupKind(raw) {
	case GroupFormatters, GroupCodeQA, GroupTyping, GroupDocs, GroupLicense, GroupExtra, GroupBuild, GroupCustom:
		return GroupKind(raw), nil
	case "":
		return GroupCustom, nil
	}
	return "", fmt.Errorf("unknown session group %q", raw)
}

// Session is a named, independently invocable check or task.
type Session struct {
	Name      string
	DependsOn []string
	Default   bool
	Group     GroupKind
}

// UnknownSessionError is returned when a request names a session the
// registry does not contain. Unknown names are rejected before any
// dependency expansion starts.
type UnknownSessionError struct {
	Name string
}

func (e *UnknownSessionError) Error() string {
	return fmt.Sprintf("unknown session %q", e.Name)
}

// CycleError is returned when dependency expansion revisits a session that
// is still on the active expansion path.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("session dependency cycle: %s", strings.Join(e.Cycle, " -> "))
}
