package http

import (
	"errors"
	"net/http"
	"testing"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "missing aggregate is 404",
			err:  errs.NewObjectNotFoundError("workOrderID", "42"),
			want: http.StatusNotFound,
		},
		{
			name: "version race is 409",
			err:  errs.NewConcurrencyConflictError("work_order", "42"),
			want: http.StatusConflict,
		},
		{
			name: "illegal transition is 400",
			err: &workorder.InvalidTransitionError{
				From: workorder.StatusPending,
				To:   workorder.StatusOnHold,
			},
			want: http.StatusBadRequest,
		},
		{
			name: "failed match is 404",
			err:  commands.ErrNoTechnicianMatch,
			want: http.StatusNotFound,
		},
		{
			name: "invalid value is 400",
			err:  errs.NewValueIsInvalidError("status"),
			want: http.StatusBadRequest,
		},
		{
			name: "missing value is 400",
			err:  errs.NewValueIsRequiredError("title"),
			want: http.StatusBadRequest,
		},
		{
			name: "out of range value is 400",
			err:  errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000),
			want: http.StatusBadRequest,
		},
		{
			name: "anything else is 500",
			err:  errors.New("connection refused"),
			want: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, statusFor(test.err))
		})
	}
}
