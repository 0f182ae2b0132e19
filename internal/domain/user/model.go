package user

import (
	"bytes"
	"encoding/json"

	"technova/internal/domain/event"
)

// User is a display-only projection of a signed-up visitor. Accounts are
// created and mutated by the backend's signup/OTP flow; this client never
// writes them.
type User struct {
	ID     string
	Name   string
	Email  string
	Mobile string
}

type apiUser struct {
	ID           json.RawMessage `json:"id"`
	AltID        json.RawMessage `json:"_id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Mobile       string          `json:"mobile"`
	MobileNumber string          `json:"mobileNumber"`
}

// UnmarshalJSON decodes a user, resolving the id and mobile aliases.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw apiUser
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.ID = event.ResolveID(raw.ID, raw.AltID)
	u.Name = raw.Name
	u.Email = raw.Email
	u.Mobile = raw.Mobile
	if u.Mobile == "" {
		u.Mobile = raw.MobileNumber
	}
	return nil
}

type listEnvelope struct {
	Users []User `json:"users"`
}

// DecodeList accepts a bare JSON array of users or a {"users": [...]}
// envelope.
// POST: returns a non-nil slice on success
func DecodeList(data []byte) ([]User, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var users []User
		if err := json.Unmarshal(trimmed, &users); err != nil {
			return nil, err
		}
		if users == nil {
			users = []User{}
		}
		return users, nil
	}
	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	if env.Users == nil {
		env.Users = []User{}
	}
	return env.Users, nil
}
