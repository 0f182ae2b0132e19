package event

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Domain errors
var (
	ErrDepartmentRequired = errors.New("department is required")
	ErrUnknownDepartment  = errors.New("department is not in the festival catalogue")
	ErrTitleRequired      = errors.New("event title is required")
	ErrTitleNotInCatalog  = errors.New("event title does not belong to the selected department")
	ErrDescriptionEmpty   = errors.New("description cannot be empty")
	ErrMinTeamSize        = errors.New("minimum team size must be at least 1")
	ErrMaxTeamSize        = errors.New("maximum team size must be at least the minimum")
	ErrDateRequired       = errors.New("date is required")
)

// Event is the client-side projection of a festival event. The backend
// serializes the same record under several shapes (`id` vs `_id`,
// `maxTeamSize` vs the misspelled `maxTeaSize`); decoding normalizes all of
// them so the rest of the app never sees the aliases.
type Event struct {
	ID          string
	Title       string
	Description string
	Department  string
	MinTeamSize int
	MaxTeamSize int
	Date        string // ISO timestamp, kept as received
	Venue       string
	Rules       string
	ImagePath   string
	CreatedAt   string
}

// apiEvent mirrors the wire shape, including every known alias.
type apiEvent struct {
	ID          json.RawMessage `json:"id"`
	AltID       json.RawMessage `json:"_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Department  string          `json:"department"`
	MinTeamSize int             `json:"minTeamSize"`
	MaxTeamSize int             `json:"maxTeamSize"`
	MaxTeaSize  int             `json:"maxTeaSize"`
	Date        string          `json:"date"`
	Venue       string          `json:"venue"`
	Rules       string          `json:"rules"`
	ImagePath   string          `json:"imagePath"`
	CreatedAt   string          `json:"createdAt"`
}

// UnmarshalJSON decodes an event, resolving field aliases.
// POST: ID, MinTeamSize, and MaxTeamSize hold normalized values
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw apiEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Event{
		ID:          ResolveID(raw.ID, raw.AltID),
		Title:       raw.Title,
		Description: raw.Description,
		Department:  raw.Department,
		Date:        raw.Date,
		Venue:       raw.Venue,
		Rules:       raw.Rules,
		ImagePath:   raw.ImagePath,
		CreatedAt:   raw.CreatedAt,
	}
	e.MinTeamSize, e.MaxTeamSize = normalizeTeamSizes(raw.MinTeamSize, raw.MaxTeamSize, raw.MaxTeaSize)
	return nil
}

// ResolveID picks the event identifier with precedence id, then _id, then the
// "0" sentinel. Both numeric and string JSON values are accepted; it never
// fails.
func ResolveID(primary, alt json.RawMessage) string {
	if s := rawToString(primary); s != "" {
		return s
	}
	if s := rawToString(alt); s != "" {
		return s
	}
	return "0"
}

func rawToString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// normalizeTeamSizes applies the documented precedence: min defaults to 1,
// max falls back through maxTeamSize, maxTeaSize, then min.
func normalizeTeamSizes(minSize, maxSize, maxAlias int) (int, int) {
	if minSize < 1 {
		minSize = 1
	}
	if maxSize < 1 {
		maxSize = maxAlias
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	return minSize, maxSize
}

// Solo reports whether the event is a solo event (one-member teams only).
// INVARIANT: fields are not mutated
func (e Event) Solo() bool {
	return e.MinTeamSize == 1 && e.MaxTeamSize == 1
}

// FixedSize reports whether the team size cannot vary.
// INVARIANT: fields are not mutated
func (e Event) FixedSize() bool {
	return e.MinTeamSize == e.MaxTeamSize
}

// TeamSizeRange renders the size constraint for display, e.g. "1–4" or "3".
func (e Event) TeamSizeRange() string {
	if e.FixedSize() {
		return strconv.Itoa(e.MinTeamSize)
	}
	return strconv.Itoa(e.MinTeamSize) + "–" + strconv.Itoa(e.MaxTeamSize)
}

// listEnvelope is the alternative list payload shape {"events": [...]}.
type listEnvelope struct {
	Events []Event `json:"events"`
}

// DecodeList accepts either a bare JSON array of events or an {"events": [...]}
// envelope and normalizes to a slice.
// POST: returns a non-nil slice on success
func DecodeList(data []byte) ([]Event, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var events []Event
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, err
		}
		if events == nil {
			events = []Event{}
		}
		return events, nil
	}
	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	if env.Events == nil {
		env.Events = []Event{}
	}
	return env.Events, nil
}

// ImageURL resolves an event image path against the API base URL. Absolute
// URLs pass through unchanged; relative paths are joined with exactly one
// separating slash.
func ImageURL(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// FormatDateTime renders an ISO timestamp as a long date and a 12-hour clock
// time. On parse failure it returns the input as the date and an empty time
// rather than an error, so a malformed backend value still displays.
func FormatDateTime(iso string) (date, clock string) {
	if iso == "" {
		return "", ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso, ""
	}
	return t.Format("Monday, 2 January 2006"), t.Format("03:04 PM")
}

// ImageUpload carries an optional event image chosen in the admin form.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// Draft is a validated admin submission for creating or updating an event.
type Draft struct {
	Title       string
	Description string
	Department  string
	MinTeamSize int
	MaxTeamSize int
	Date        time.Time
	Venue       string
	Rules       string
}

// Validate checks the draft against the festival catalogue and the team-size
// invariants.
// PRE: Draft fields are populated from the admin form
// POST: returns the first violated rule, nil if the draft is submittable
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Department) == "" {
		return ErrDepartmentRequired
	}
	if !KnownDepartment(d.Department) {
		return ErrUnknownDepartment
	}
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if !ValidTitle(d.Department, d.Title) {
		return ErrTitleNotInCatalog
	}
	if strings.TrimSpace(d.Description) == "" {
		return ErrDescriptionEmpty
	}
	if d.MinTeamSize < 1 {
		return ErrMinTeamSize
	}
	if d.MaxTeamSize < d.MinTeamSize {
		return ErrMaxTeamSize
	}
	if d.Date.IsZero() {
		return ErrDateRequired
	}
	return nil
}
