package orchestrators_test

import (
	"context"
	"errors"
	"testing"

	"technova/internal/application/orchestrators"
	"technova/internal/domain/event"
	"technova/internal/domain/registration"
)

// fakeRegistrations records Register calls.
type fakeRegistrations struct {
	calls   int
	eventID string
	payload registration.Payload
	err     error
}

func (f *fakeRegistrations) Register(_ context.Context, eventID string, payload registration.Payload) error {
	f.calls++
	f.eventID = eventID
	f.payload = payload
	return f.err
}

func teamEvent() event.Event {
	return event.Event{ID: "e7", Title: "Robotics", MinTeamSize: 2, MaxTeamSize: 4}
}

// TestExecuteRegisterTeam_Success tests a valid team submission.
func TestExecuteRegisterTeam_Success(t *testing.T) {
	fake := &fakeRegistrations{}
	input := orchestrators.RegisterTeamInput{
		Event:    teamEvent(),
		TeamName: " Bit Benders ",
		Members: []registration.Member{
			{Name: "Asha", MobileNumber: "9876543210", Email: "asha@x.in"},
			{Name: "Ravi", MobileNumber: "9876543211", Email: "ravi@x.in"},
		},
	}

	err := orchestrators.ExecuteRegisterTeam(context.Background(), input, orchestrators.RegisterTeamDeps{Registrations: fake})
	if err != nil {
		t.Fatalf("ExecuteRegisterTeam() error = %v", err)
	}
	if fake.calls != 1 || fake.eventID != "e7" {
		t.Errorf("calls = %d, eventID = %q", fake.calls, fake.eventID)
	}
	if fake.payload.TeamName != "Bit Benders" {
		t.Errorf("team name = %q, want trimmed", fake.payload.TeamName)
	}
}

// TestExecuteRegisterTeam_ValidationStopsNetwork tests that an invalid form
// never reaches the backend.
func TestExecuteRegisterTeam_ValidationStopsNetwork(t *testing.T) {
	tests := []struct {
		name    string
		input   orchestrators.RegisterTeamInput
		wantErr error
	}{
		{
			"blank member field",
			orchestrators.RegisterTeamInput{
				Event:    teamEvent(),
				TeamName: "Bit Benders",
				Members: []registration.Member{
					{Name: "Asha", MobileNumber: "9876543210", Email: "asha@x.in"},
					{Name: "Ravi", MobileNumber: "  ", Email: "ravi@x.in"},
				},
			},
			registration.ErrMemberFieldsRequired,
		},
		{
			"missing team name",
			orchestrators.RegisterTeamInput{
				Event: teamEvent(),
				Members: []registration.Member{
					{Name: "Asha", MobileNumber: "9876543210", Email: "asha@x.in"},
					{Name: "Ravi", MobileNumber: "9876543211", Email: "ravi@x.in"},
				},
			},
			registration.ErrTeamNameRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRegistrations{}
			err := orchestrators.ExecuteRegisterTeam(context.Background(), tt.input, orchestrators.RegisterTeamDeps{Registrations: fake})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if fake.calls != 0 {
				t.Errorf("backend called %d times, want 0", fake.calls)
			}
		})
	}
}

// TestExecuteRegisterTeam_SoloOmitsTeamName tests the solo payload rule.
func TestExecuteRegisterTeam_SoloOmitsTeamName(t *testing.T) {
	fake := &fakeRegistrations{}
	input := orchestrators.RegisterTeamInput{
		Event:    event.Event{ID: "s1", MinTeamSize: 1, MaxTeamSize: 1},
		TeamName: "Typed Anyway",
		Members:  []registration.Member{{Name: "Asha", MobileNumber: "9876543210", Email: "asha@x.in"}},
	}

	if err := orchestrators.ExecuteRegisterTeam(context.Background(), input, orchestrators.RegisterTeamDeps{Registrations: fake}); err != nil {
		t.Fatalf("ExecuteRegisterTeam() error = %v", err)
	}
	if fake.payload.TeamName != "" {
		t.Errorf("solo payload team name = %q, want empty", fake.payload.TeamName)
	}
}

// TestExecuteRegisterTeam_BackendError tests that backend rejections surface.
func TestExecuteRegisterTeam_BackendError(t *testing.T) {
	rejected := errors.New("Already registered for this event")
	fake := &fakeRegistrations{err: rejected}
	input := orchestrators.RegisterTeamInput{
		Event:   event.Event{ID: "s1", MinTeamSize: 1, MaxTeamSize: 1},
		Members: []registration.Member{{Name: "Asha", MobileNumber: "9876543210", Email: "asha@x.in"}},
	}

	if err := orchestrators.ExecuteRegisterTeam(context.Background(), input, orchestrators.RegisterTeamDeps{Registrations: fake}); !errors.Is(err, rejected) {
		t.Errorf("error = %v, want backend rejection", err)
	}
}
