package access

import (
	"testing"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	room := &domain.Room{ID: "r1", Owner: domain.UserSummary{ID: "owner"}}
	experience := &domain.Experience{ID: "e1", Host: domain.UserSummary{ID: "host"}}

	tests := []struct {
		name     string
		actor    string
		resource domain.Owned
		action   Action
		want     error
	}{
		{"anonymous list", "", nil, ActionList, nil},
		{"anonymous retrieve", "", room, ActionRetrieve, nil},
		{"anonymous create", "", nil, ActionCreate, domain.ErrUnauthenticated},
		{"anonymous update checked before ownership", "", room, ActionUpdate, domain.ErrUnauthenticated},
		{"anonymous delete", "", room, ActionDelete, domain.ErrUnauthenticated},
		{"authenticated create", "someone", nil, ActionCreate, nil},
		{"owner update", "owner", room, ActionUpdate, nil},
		{"owner delete", "owner", room, ActionDelete, nil},
		{"non-owner update", "someone", room, ActionUpdate, domain.ErrForbidden},
		{"non-owner delete", "someone", room, ActionDelete, domain.ErrForbidden},
		{"host update", "host", experience, ActionUpdate, nil},
		{"non-host update", "owner", experience, ActionUpdate, domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, tt.resource, tt.action)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRequireIdentity(t *testing.T) {
	assert.ErrorIs(t, RequireIdentity(""), domain.ErrUnauthenticated)
	assert.NoError(t, RequireIdentity("u1"))
}
