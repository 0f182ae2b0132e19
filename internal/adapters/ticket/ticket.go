// Package ticket renders the QR check-in code shown after a successful
// registration. The code carries enough to identify the entry at the venue
// desk; it is display-only and holds no credentials.
package ticket

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrEmptyEventID rejects tickets for an unresolved event.
var ErrEmptyEventID = errors.New("ticket needs an event id")

// PNGSize is the pixel width of the generated code.
const PNGSize = 256

// Content builds the string encoded into the QR code.
// POST: stable format "TECHNOVA26|<eventID>|<teamName>"; solo entries carry an
// empty team segment
func Content(eventID, teamName string) string {
	return fmt.Sprintf("TECHNOVA26|%s|%s", eventID, strings.TrimSpace(teamName))
}

// PNG renders the check-in QR code for one registration.
func PNG(eventID, teamName string) ([]byte, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, ErrEmptyEventID
	}
	png, err := qrcode.Encode(Content(eventID, teamName), qrcode.Medium, PNGSize)
	if err != nil {
		return nil, fmt.Errorf("encode ticket: %w", err)
	}
	return png, nil
}
