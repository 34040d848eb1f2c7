package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	dErrors "clearview/pkg/domain-errors"
)

// Typed identifiers. Upload-tree, license, agent and user ids are the numeric
// keys of the surrounding repository; a highlight id names the match or bulk
// record a span came from; event ids are UUIDs minted by the event log.
type (
	ItemID      int64
	UploadID    int64
	UserID      int64
	LicenseID   int64
	AgentID     int64
	HighlightID int64
	EventID     uuid.UUID
)

// maxIDLength bounds numeric id input before parsing.
const maxIDLength = 19

func parsePositive(s, field string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", field)
	}
	if len(s) > maxIDLength {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "%s is too long", field)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "invalid %s", field)
	}
	if v <= 0 {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "%s must be positive", field)
	}
	return v, nil
}

// ParseItemID parses an upload-tree item id from external input.
func ParseItemID(s string) (ItemID, error) {
	v, err := parsePositive(s, "item id")
	return ItemID(v), err
}

func ParseUploadID(s string) (UploadID, error) {
	v, err := parsePositive(s, "upload id")
	return UploadID(v), err
}

func ParseUserID(s string) (UserID, error) {
	v, err := parsePositive(s, "user id")
	return UserID(v), err
}

func ParseLicenseID(s string) (LicenseID, error) {
	v, err := parsePositive(s, "license id")
	return LicenseID(v), err
}

func ParseAgentID(s string) (AgentID, error) {
	v, err := parsePositive(s, "agent id")
	return AgentID(v), err
}

func ParseHighlightID(s string) (HighlightID, error) {
	v, err := parsePositive(s, "highlight id")
	return HighlightID(v), err
}

// ParseEventID parses a UUID event id, rejecting the nil UUID.
func ParseEventID(s string) (EventID, error) {
	if s == "" {
		return EventID{}, dErrors.New(dErrors.CodeInvalidInput, "event id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return EventID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid event id")
	}
	if u == uuid.Nil {
		return EventID{}, dErrors.New(dErrors.CodeInvalidInput, "event id cannot be nil")
	}
	return EventID(u), nil
}

// NewEventID mints a fresh event id.
func NewEventID() EventID { return EventID(uuid.New()) }

func (id EventID) String() string { return uuid.UUID(id).String() }

func (id EventID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func (id EventID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *EventID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id ItemID) String() string      { return strconv.FormatInt(int64(id), 10) }
func (id UploadID) String() string    { return strconv.FormatInt(int64(id), 10) }
func (id UserID) String() string      { return strconv.FormatInt(int64(id), 10) }
func (id LicenseID) String() string   { return strconv.FormatInt(int64(id), 10) }
func (id AgentID) String() string     { return strconv.FormatInt(int64(id), 10) }
func (id HighlightID) String() string { return strconv.FormatInt(int64(id), 10) }
