package registration

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"technova/internal/domain/event"
)

// Domain errors
var (
	ErrMemberFieldsRequired = errors.New("All member fields (name, mobile, email) are required.")
	ErrTeamNameRequired     = errors.New("Team name is required.")
)

// Member is one participant on a team entry. The backend sometimes serializes
// the phone field as `mobile` instead of `mobileNumber`; decoding accepts both.
type Member struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
}

type apiMember struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
}

// UnmarshalJSON decodes a member, resolving the mobile field alias.
func (m *Member) UnmarshalJSON(data []byte) error {
	var raw apiMember
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Name = raw.Name
	m.Email = raw.Email
	m.MobileNumber = raw.MobileNumber
	if m.MobileNumber == "" {
		m.MobileNumber = raw.Mobile
	}
	return nil
}

// trimmed returns a copy with all fields whitespace-trimmed.
func (m Member) trimmed() Member {
	return Member{
		Name:         strings.TrimSpace(m.Name),
		MobileNumber: strings.TrimSpace(m.MobileNumber),
		Email:        strings.TrimSpace(m.Email),
	}
}

// complete reports whether every field is non-empty after trimming.
func (m Member) complete() bool {
	t := m.trimmed()
	return t.Name != "" && t.MobileNumber != "" && t.Email != ""
}

// Draft is the in-progress registration form for one event. It owns the
// member-slot list and enforces the event's team-size constraints: the list
// starts at the minimum size, add and remove are no-ops outside the allowed
// range, and fixed-size events expose neither control.
type Draft struct {
	TeamName string
	Members  []Member

	minSize int
	maxSize int
}

// NewDraft creates a draft for an event with the given size constraints,
// pre-filled with exactly minSize empty member slots.
// PRE: sizes come from a normalized Event (min >= 1, max >= min)
// POST: len(Members) == minSize
func NewDraft(minSize, maxSize int) *Draft {
	if minSize < 1 {
		minSize = 1
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	return &Draft{
		Members: make([]Member, minSize),
		minSize: minSize,
		maxSize: maxSize,
	}
}

// NewDraftFor creates a draft sized for the given event.
func NewDraftFor(e event.Event) *Draft {
	return NewDraft(e.MinTeamSize, e.MaxTeamSize)
}

// MinSize returns the smallest allowed team size.
func (d *Draft) MinSize() int { return d.minSize }

// MaxSize returns the largest allowed team size.
func (d *Draft) MaxSize() int { return d.maxSize }

// Solo reports whether the draft is for a solo event.
func (d *Draft) Solo() bool { return d.minSize == 1 && d.maxSize == 1 }

// FixedSize reports whether the slot count cannot change.
func (d *Draft) FixedSize() bool { return d.minSize == d.maxSize }

// CanAdd reports whether another member slot may be added.
func (d *Draft) CanAdd() bool {
	return !d.FixedSize() && len(d.Members) < d.maxSize
}

// CanRemove reports whether a member slot may be removed.
func (d *Draft) CanRemove() bool {
	return !d.FixedSize() && len(d.Members) > d.minSize
}

// AddMember appends an empty slot when allowed; otherwise it is a no-op.
// POST: returns true if a slot was added
func (d *Draft) AddMember() bool {
	if !d.CanAdd() {
		return false
	}
	d.Members = append(d.Members, Member{})
	return true
}

// RemoveMember deletes the slot at index i when allowed; out-of-range indexes
// and at-minimum drafts are no-ops.
// POST: returns true if a slot was removed
func (d *Draft) RemoveMember(i int) bool {
	if !d.CanRemove() || i < 0 || i >= len(d.Members) {
		return false
	}
	d.Members = append(d.Members[:i], d.Members[i+1:]...)
	return true
}

// Validate checks the draft before submission: every member field must be
// non-empty after trimming, and non-solo events require a team name.
// POST: nil means Payload() is safe to submit
func (d *Draft) Validate() error {
	for _, m := range d.Members {
		if !m.complete() {
			return ErrMemberFieldsRequired
		}
	}
	if !d.Solo() && strings.TrimSpace(d.TeamName) == "" {
		return ErrTeamNameRequired
	}
	return nil
}

// Payload is the wire body for POST /api/registrations/register/:eventId.
type Payload struct {
	TeamName    string   `json:"teamName,omitempty"`
	TeamMembers []Member `json:"teamMembers"`
}

// Payload builds the submission body with trimmed member fields. Solo events
// omit the team name even when one was typed.
// PRE: Validate() returned nil
func (d *Draft) Payload() Payload {
	p := Payload{TeamMembers: make([]Member, len(d.Members))}
	for i, m := range d.Members {
		p.TeamMembers[i] = m.trimmed()
	}
	if !d.Solo() {
		p.TeamName = strings.TrimSpace(d.TeamName)
	}
	return p
}

// Record is one registration as returned by the backend listing endpoints.
// Some deployments nest the event under an `event` key; others flatten the
// event fields onto the registration record. The nested object wins.
type Record struct {
	ID       string
	TeamName string
	Members  []Member
	Event    event.Event
}

type apiRecord struct {
	ID          json.RawMessage `json:"id"`
	AltID       json.RawMessage `json:"_id"`
	TeamName    string          `json:"teamName"`
	TeamMembers []Member        `json:"teamMembers"`
	Members     []Member        `json:"members"`
	Event       json.RawMessage `json:"event"`
}

// UnmarshalJSON decodes a registration record, resolving both record shapes.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw apiRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.ID = event.ResolveID(raw.ID, raw.AltID)
	r.TeamName = raw.TeamName
	r.Members = raw.TeamMembers
	if r.Members == nil {
		r.Members = raw.Members
	}

	nested := bytes.TrimSpace(raw.Event)
	if len(nested) > 0 && !bytes.Equal(nested, []byte("null")) {
		return json.Unmarshal(nested, &r.Event)
	}
	// Flattened shape: event fields are promoted onto the record itself.
	return json.Unmarshal(data, &r.Event)
}

type recordEnvelope struct {
	Registrations []Record `json:"registrations"`
	Events        []Record `json:"events"`
}

// DecodeRecords accepts a bare array, a {"registrations": [...]} envelope, or
// the legacy {"events": [...]} envelope, in that order of precedence.
// POST: returns a non-nil slice on success
func DecodeRecords(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		if records == nil {
			records = []Record{}
		}
		return records, nil
	}
	var env recordEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	if env.Registrations != nil {
		return env.Registrations, nil
	}
	if env.Events != nil {
		return env.Events, nil
	}
	return []Record{}, nil
}
