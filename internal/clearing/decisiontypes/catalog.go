// Package decisiontypes maps clearing decision types to display names and back.
package decisiontypes

import (
	"maps"

	"clearview/internal/clearing/models"
	dErrors "clearview/pkg/domain-errors"
)

// Catalog is an immutable bidirectional type/name table.
type Catalog struct {
	names  map[models.DecisionType]string
	byName map[string]models.DecisionType
}

// Default returns the catalog of the built-in decision types.
func Default() *Catalog {
	c, _ := New(map[models.DecisionType]string{
		models.TypeWorkInProgress: "Work in progress",
		models.TypeToBeDiscussed:  "To be discussed",
		models.TypeIrrelevant:     "Irrelevant",
		models.TypeIdentified:     "Identified",
		models.TypeNonLicense:     "Non-license",
		models.TypeSameAsPrevious: "Same as previous",
	})
	return c
}

// New builds a catalog from a type→name table. Names must be unique and non-empty.
func New(names map[models.DecisionType]string) (*Catalog, error) {
	c := &Catalog{
		names:  make(map[models.DecisionType]string, len(names)),
		byName: make(map[string]models.DecisionType, len(names)),
	}
	for t, name := range names {
		if name == "" {
			return nil, dErrors.Newf(dErrors.CodeValidation, "decision type %d has an empty name", t)
		}
		if other, dup := c.byName[name]; dup {
			return nil, dErrors.Newf(dErrors.CodeValidation, "decision types %d and %d share name %q", other, t, name)
		}
		c.names[t] = name
		c.byName[name] = t
	}
	return c, nil
}

// TypeName returns the display name of t.
//
// Errors: CodeUnknownDecisionType when t has no entry.
func (c *Catalog) TypeName(t models.DecisionType) (string, error) {
	name, ok := c.names[t]
	if !ok {
		return "", dErrors.Newf(dErrors.CodeUnknownDecisionType, "decision type %d is not in the catalog", t)
	}
	return name, nil
}

// TypeByName returns the type displayed as name.
//
// Errors: CodeUnknownDecisionType when no type carries that name.
func (c *Catalog) TypeByName(name string) (models.DecisionType, error) {
	t, ok := c.byName[name]
	if !ok {
		return 0, dErrors.Newf(dErrors.CodeUnknownDecisionType, "no decision type named %q", name)
	}
	return t, nil
}

// Map returns a copy of the type→name table for selection lists.
func (c *Catalog) Map() map[models.DecisionType]string {
	return maps.Clone(c.names)
}

// Contains reports whether t has a catalog entry.
func (c *Catalog) Contains(t models.DecisionType) bool {
	_, ok := c.names[t]
	return ok
}
