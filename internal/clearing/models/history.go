package models

import (
	"time"

	id "clearview/pkg/domain"
)

// HistoryLicense is one license entry of a history row.
type HistoryLicense struct {
	ShortName string `json:"short_name"`
	Negative  bool   `json:"negative"`
}

// NegativeTag marks negative licenses in the joined history text.
const NegativeTag = "(negative)"

// HistoryRow is one rendered clearing decision.
type HistoryRow struct {
	Date     time.Time        `json:"date"`
	UserName string           `json:"username"`
	Scope    Scope            `json:"scope"`
	Type     DecisionType     `json:"-"`
	TypeName string           `json:"type"`
	Licenses []HistoryLicense `json:"-"`
	// LicenseText is the comma-joined, sorted license list with negative entries tagged.
	LicenseText string `json:"licenses"`
}

// HistoryView is the formatted clearing history, newest row first. Selected
// is the type of the most recent row, nil when there is no history.
type HistoryView struct {
	Rows     []HistoryRow  `json:"rows"`
	Selected *DecisionType `json:"selected_type,omitempty"`
}

// BulkMatch groups the items whose latest decision came from a bulk action
// asserting (or, when Negative, removing) one license.
type BulkMatch struct {
	License  LicenseRef  `json:"license"`
	Negative bool        `json:"negative"`
	ItemIDs  []id.ItemID `json:"item_ids"`
}
