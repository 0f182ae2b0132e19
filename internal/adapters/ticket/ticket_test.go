package ticket_test

import (
	"bytes"
	"testing"

	"technova/internal/adapters/ticket"
)

// TestContent tests the encoded ticket format.
func TestContent(t *testing.T) {
	if got := ticket.Content("e9", " Bit Benders "); got != "TECHNOVA26|e9|Bit Benders" {
		t.Errorf("Content() = %q", got)
	}
	if got := ticket.Content("e9", ""); got != "TECHNOVA26|e9|" {
		t.Errorf("solo Content() = %q", got)
	}
}

// TestPNG tests that a PNG is produced and empty ids are rejected.
func TestPNG(t *testing.T) {
	png, err := ticket.PNG("e9", "Bit Benders")
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}

	if _, err := ticket.PNG("  ", "x"); err != ticket.ErrEmptyEventID {
		t.Errorf("PNG() with empty id = %v, want ErrEmptyEventID", err)
	}
}
