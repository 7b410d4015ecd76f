package api

import (
	"errors"
	"fmt"
	"strings"
)

// Validator is implemented by DTOs that check themselves after decoding.
type Validator interface {
	Validate() error
}

// Validate normalizes Action and checks the fields it needs.
func (c *ClientCommand) Validate() error {
	c.Action = strings.ToUpper(strings.TrimSpace(c.Action))
	switch c.Action {
	case ActionEnter:
		if c.Instance == "" {
			return errors.New("instance is required for ENTER")
		}
	case ActionNext, ActionHub:
		if c.Seed != 0 {
			return fmt.Errorf("seed is only accepted with ENTER")
		}
	case "":
		return errors.New("action is required")
	default:
		return fmt.Errorf("unknown action %q", c.Action)
	}
	return nil
}
