package backend

import (
	"context"
	"fmt"

	"technova/internal/domain/user"
)

const msgLoadUsers = "Failed to load users"

// AllUsers fetches every signed-up user; admin only.
func (c *Client) AllUsers(ctx context.Context) ([]user.User, error) {
	body, err := c.getJSON(ctx, "/allSignedUpUsers", msgLoadUsers)
	if err != nil {
		return nil, err
	}
	users, err := user.DecodeList(body)
	if err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
