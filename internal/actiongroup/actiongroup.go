// Package actiongroup validates declared action groups against the actual
// plugin inventory. An action group is a named set of plugin-style items
// that must share a declared attribute; membership is defined by a name
// pattern minus an explicit exclusion list. The validator checks the
// declarations and the inventory against each other in both directions and
// returns a full report rather than stopping at the first fault.
package actiongroup

import (
	"fmt"
	"regexp"
)

// Group declares one action group.
type Group struct {
	// Name of the action group.
	Name string
	// Pattern matches item names that could belong to this group.
	Pattern *regexp.Regexp
	// RequiredAttribute is the attribute every member must declare.
	RequiredAttribute string
	// Exclusions lists items that match the pattern but are not part of
	// the group. Every other matching item is assumed to be a member.
	Exclusions []string
}

// NewGroup compiles the pattern and builds a group declaration.
func NewGroup(name, pattern, requiredAttribute string, exclusions []string) (Group, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Group{}, fmt.Errorf("action group %q: invalid pattern %q: %w", name, pattern, err)
	}
	return Group{
		Name:              name,
		Pattern:           re,
		RequiredAttribute: requiredAttribute,
		Exclusions:        exclusions,
	}, nil
}

// excluded reports whether the item name is on the group's exclusion list.
func (g Group) excluded(name string) bool {
	for _, excl := range g.Exclusions {
		if excl == name {
			return true
		}
	}
	return false
}

// InventoryItem is one plugin-style item from the collection inventory.
type InventoryItem struct {
	Name       string
	Attributes []string
}

// hasAttribute reports whether the item declares the given attribute.
func (i InventoryItem) hasAttribute(attr string) bool {
	for _, a := range i.Attributes {
		if a == attr {
			return true
		}
	}
	return false
}

// ErrorKind classifies a validation error.
type ErrorKind string

const (
	// MissingAttribute: the item matches the group's pattern but neither
	// declares the required attribute nor appears in the exclusions.
	MissingAttribute ErrorKind = "missing-attribute"
	// StaleExclusion: the exclusion list names an item that does not
	// match the group's pattern (or no longer exists).
	StaleExclusion ErrorKind = "stale-exclusion"
	// UnexpectedGroupMembership: the item declares a group's required
	// attribute without matching that group's pattern.
	UnexpectedGroupMembership ErrorKind = "unexpected-group-membership"
)

// ValidationError is one inconsistency between the declared groups and the
// inventory.
type ValidationError struct {
	Kind  ErrorKind
	Item  string
	Group string
}

func (e ValidationError) Error() string {
	switch e.Kind {
	case MissingAttribute:
		return fmt.Sprintf("%s: matches action group %q but does not declare its required attribute and is not excluded", e.Item, e.Group)
	case StaleExclusion:
		return fmt.Sprintf("%s: listed in exclusions of action group %q but does not match its pattern", e.Item, e.Group)
	case UnexpectedGroupMembership:
		return fmt.Sprintf("%s: declares the attribute of action group %q without matching its pattern", e.Item, e.Group)
	}
	return fmt.Sprintf("%s: inconsistent with action group %q", e.Item, e.Group)
}

// Validate checks group membership, pattern matching and exclusions for
// mutual consistency. Items are checked in inventory order and groups in
// declaration order; all applicable errors are collected. An empty result
// means the declarations and the inventory agree.
func Validate(groups []Group, inventory []InventoryItem) []ValidationError {
	var errs []ValidationError

	for _, item := range inventory {
		for _, group := range groups {
			matches := group.Pattern.MatchString(item.Name)
			hasAttr := item.hasAttribute(group.RequiredAttribute)
			switch {
			case matches && !hasAttr && !group.excluded(item.Name):
				errs = append(errs, ValidationError{
					Kind:  MissingAttribute,
					Item:  item.Name,
					Group: group.Name,
				})
			case !matches && hasAttr:
				errs = append(errs, ValidationError{
					Kind:  UnexpectedGroupMembership,
					Item:  item.Name,
					Group: group.Name,
				})
			}
		}
	}

	// Exclusion lists must stay honest as the inventory evolves: every
	// excluded name has to match the pattern and refer to a real item.
	known := make(map[string]bool, len(inventory))
	for _, item := range inventory {
		known[item.Name] = true
	}
	for _, group := range groups {
		for _, excl := range group.Exclusions {
			if !group.Pattern.MatchString(excl) || !known[excl] {
				errs = append(errs, ValidationError{
					Kind:  StaleExclusion,
					Item:  excl,
					Group: group.Name,
				})
			}
		}
	}

	return errs
}
