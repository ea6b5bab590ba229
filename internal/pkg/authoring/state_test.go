package authoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ManuelReschke/InkFox/app/models"
)

func TestTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to models.ArticleStatus
		ok       bool
	}{
		{from: models.StatusDraft, to: models.StatusDraft, ok: true},
		{from: models.StatusDraft, to: models.StatusPublished, ok: true},
		{from: models.StatusPublished, to: models.StatusDraft, ok: true},
		{from: models.StatusPublished, to: models.StatusPublished, ok: true},
		{from: models.StatusDraft, to: StateDeleted, ok: true},
		{from: models.StatusPublished, to: StateDeleted, ok: true},
		{from: StateDeleted, to: models.StatusDraft},
		{from: StateDeleted, to: models.StatusPublished},
		{from: StateDeleted, to: StateDeleted},
		{from: models.StatusDraft, to: "archived"},
		{from: "archived", to: models.StatusDraft},
	}

	for _, tt := range tests {
		err := Transition(tt.from, tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tt.from, tt.to)
		}
	}
}
