package draft

import (
	"fmt"

	"shilpgroup-io/backoffice/models"

	"github.com/pkg/errors"
)

// Navigator tracks which wizard section the admin is on. Forward moves
// are gated on the completion set; backward moves are always allowed.
type Navigator struct {
	current Section
}

func NewNavigator() Navigator {
	return Navigator{current: Section1}
}

func (n *Navigator) Current() Section {
	return n.current
}

// Next advances to the following section only when the current one
// passes its validator. A blocked move leaves the navigator (and the
// draft) untouched.
func (n *Navigator) Next(d *models.ProjectDraft) error {
	if !ValidateSection(d, n.current) {
		return errors.Wrapf(ErrIncomplete, "complete section %d before proceeding", n.current)
	}
	if n.current < Section4 {
		n.current++
	}
	return nil
}

func (n *Navigator) Prev() {
	if n.current > Section1 {
		n.current--
	}
}

// JumpTo allows direct navigation backwards, or forwards into a section
// whose prerequisite section is complete.
func (n *Navigator) JumpTo(target Section, d *models.ProjectDraft) error {
	if target < Section1 || target > Section4 {
		return fmt.Errorf("no such section: %d", target)
	}
	if target <= n.current || ValidateSection(d, target-1) {
		n.current = target
		return nil
	}
	return errors.Wrap(ErrIncomplete, "complete the previous sections first")
}

func (n *Navigator) Reset() {
	n.current = Section1
}
