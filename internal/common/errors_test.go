package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	tests := []struct {
		err         error
		name        string
		wantMessage string
		wantError   string
	}{
		{
			name:        "with cause",
			err:         NewUserError("cannot open recipes.csv", errors.New("permission denied")),
			wantMessage: "cannot open recipes.csv",
			wantError:   "cannot open recipes.csv: permission denied",
		},
		{
			name:        "without cause",
			err:         NewUserError("xlsx output needs --output", nil),
			wantMessage: "xlsx output needs --output",
			wantError:   "xlsx output needs --output",
		},
		{
			name:        "wrapped",
			err:         fmt.Errorf("import failed: %w", NewUserError("import rejected", ErrImportRejected)),
			wantMessage: "import rejected",
			wantError:   "import failed: import rejected: import rejected",
		},
		{
			name:        "plain error",
			err:         errors.New("disk full"),
			wantMessage: "disk full",
			wantError:   "disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, UserMessage(tt.err))
			assert.Equal(t, tt.wantError, tt.err.Error())
		})
	}
}

func TestUserError_Unwrap(t *testing.T) {
	err := NewUserError("nothing written", ErrDuplicateEntry)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
	assert.NotErrorIs(t, err, ErrNotFound)
}
