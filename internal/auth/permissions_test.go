package auth

import (
	"testing"

	"inspirahub/internal/models"

	"github.com/stretchr/testify/assert"
)

func claimsFor(userID int64, role models.UserRole) *Claims {
	return &Claims{UserID: userID, Role: role}
}

// TestCanAccessResource - матрица владелец/админ/чужой
func TestCanAccessResource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		claims  *Claims
		ownerID int64
		want    bool
	}{
		{"владелец имеет доступ", claimsFor(1, models.UserRoleRegular), 1, true},
		{"чужой не имеет доступа", claimsFor(1, models.UserRoleRegular), 2, false},
		{"админ имеет доступ к чужому", claimsFor(1, models.UserRoleAdmin), 2, true},
		{"админ имеет доступ к своему", claimsFor(1, models.UserRoleAdmin), 1, true},
		{"nil claims - отказ", nil, 1, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CanAccessResource(tt.claims, tt.ownerID))
		})
	}
}

func TestIsAdmin(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAdmin(claimsFor(1, models.UserRoleAdmin)))
	assert.False(t, IsAdmin(claimsFor(1, models.UserRoleRegular)))
}

func TestHasRole(t *testing.T) {
	t.Parallel()

	assert.True(t, HasRole(claimsFor(1, models.UserRoleRegular), models.UserRoleRegular))
	assert.False(t, HasRole(claimsFor(1, models.UserRoleRegular), models.UserRoleAdmin))
	assert.False(t, HasRole(nil, models.UserRoleRegular))
}

func TestValidateRole(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRole(models.UserRoleAdmin))
	assert.NoError(t, ValidateRole(models.UserRoleRegular))
	assert.Error(t, ValidateRole(models.UserRole("SuperUser")))
}
