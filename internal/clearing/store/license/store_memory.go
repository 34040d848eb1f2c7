// Package license serves the license catalog used to display license names.
package license

import (
	"context"
	"slices"
	"sync"

	"clearview/internal/clearing/models"
	id "clearview/pkg/domain"
	dErrors "clearview/pkg/domain-errors"
)

// InMemory is a license catalog held in a map.
type InMemory struct {
	mu       sync.RWMutex
	licenses map[id.LicenseID]models.LicenseRef
}

func NewInMemory(refs ...models.LicenseRef) *InMemory {
	s := &InMemory{licenses: make(map[id.LicenseID]models.LicenseRef, len(refs))}
	for _, ref := range refs {
		s.licenses[ref.ID] = ref
	}
	return s
}

// Save adds or replaces a catalog entry.
func (s *InMemory) Save(_ context.Context, ref models.LicenseRef) error {
	if ref.ID <= 0 || ref.ShortName == "" {
		return dErrors.New(dErrors.CodeValidation, "license needs a positive id and a short name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.licenses[ref.ID] = ref
	return nil
}

// LookupLicense returns the catalog entry for license.
//
// Errors: CodeUnknownLicenseRef when the id has no entry.
func (s *InMemory) LookupLicense(_ context.Context, license id.LicenseID) (models.LicenseRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ref, ok := s.licenses[license]
	if !ok {
		return models.LicenseRef{}, unknownLicense(license)
	}
	return ref, nil
}

// List returns all licenses ordered by short name.
func (s *InMemory) List(_ context.Context) ([]models.LicenseRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LicenseRef, 0, len(s.licenses))
	for _, ref := range s.licenses {
		out = append(out, ref)
	}
	slices.SortFunc(out, models.CompareLicenseRefs)
	return out, nil
}

func unknownLicense(license id.LicenseID) error {
	return dErrors.Newf(dErrors.CodeUnknownLicenseRef, "license %d is not in the catalog", license)
}
