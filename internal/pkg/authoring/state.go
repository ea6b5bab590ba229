package authoring

import (
	"errors"
	"fmt"

	"github.com/ManuelReschke/InkFox/app/models"
)

// StateDeleted is the terminal state of a soft-deleted article. It is never
// stored in the status column; deleted_at marks it.
const StateDeleted models.ArticleStatus = "deleted"

var ErrInvalidTransition = errors.New("invalid article state transition")

// transitions lists the allowed target states per source state.
var transitions = map[models.ArticleStatus][]models.ArticleStatus{
	models.StatusDraft:     {models.StatusDraft, models.StatusPublished, StateDeleted},
	models.StatusPublished: {models.StatusDraft, models.StatusPublished, StateDeleted},
	StateDeleted:           nil,
}

// Transition reports whether an article may move from one state to another.
func Transition(from, to models.ArticleStatus) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
