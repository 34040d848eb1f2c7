package models

import (
	"cmp"
	"slices"

	id "clearview/pkg/domain"
)

// LicenseRef is the immutable identity of a catalog license. It is used as a
// value and lookup key and never mutated after construction.
type LicenseRef struct {
	ID        id.LicenseID `json:"id"`
	ShortName string       `json:"short_name"`
}

// CompareLicenseRefs orders by short name (case-sensitive) then id.
func CompareLicenseRefs(a, b LicenseRef) int {
	if c := cmp.Compare(a.ShortName, b.ShortName); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortLicenseRefs returns a sorted copy of refs.
func SortLicenseRefs(refs []LicenseRef) []LicenseRef {
	out := slices.Clone(refs)
	slices.SortFunc(out, CompareLicenseRefs)
	return out
}
