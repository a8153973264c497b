//go:build unit

package httperr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-inventory/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.Mark(errs.New("booking not found"), errs.ErrNotFound), http.StatusNotFound},
		{"invalid argument", errs.Wrap(errs.Mark(errs.New("bad range"), errs.ErrInvalidArgument), "create"), http.StatusBadRequest},
		{"conflict", errs.Mark(errs.New("room taken"), errs.ErrConflict), http.StatusConflict},
		{"integrity", errs.Mark(errs.New("cannot delete: referenced by other records"), errs.ErrIntegrityViolation), http.StatusConflict},
		{"database failure", errs.Wrap(errs.Mark(errs.New("sequence returned 0"), errs.ErrDatabaseOperationFailed), "next code"), http.StatusInternalServerError},
		{"unclassified", errs.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestRespondHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "classified error keeps its message",
			err:         errs.Mark(errs.New("cannot delete: referenced by other records"), errs.ErrIntegrityViolation),
			wantStatus:  http.StatusConflict,
			wantMessage: "cannot delete: referenced by other records",
		},
		{
			name:        "database failure is masked",
			err:         errs.Mark(errs.New("booking code sequence must start at 1"), errs.ErrDatabaseOperationFailed),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name:        "driver error is masked",
			err:         errs.New("pq: connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Respond(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.True(t, c.IsAborted())
		})
	}
}
