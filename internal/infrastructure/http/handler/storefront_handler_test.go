package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mrops-br/storefront-api/internal/app/dto"
	"github.com/mrops-br/storefront-api/internal/app/view"
	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "NotFound", err: domain.ErrProductNotFound, want: http.StatusNotFound},
		{name: "WrappedNotFound", err: fmt.Errorf("lookup: %w", domain.ErrProductNotFound), want: http.StatusNotFound},
		{name: "InvalidSort", err: domain.ErrInvalidSortCriterion, want: http.StatusBadRequest},
		{name: "InvalidProductID", err: domain.ErrInvalidProductID, want: http.StatusBadRequest},
		{name: "UnknownAction", err: view.ErrUnknownAction, want: http.StatusBadRequest},
		{name: "QuantityRequired", err: dto.ErrQuantityRequired, want: http.StatusBadRequest},
		{name: "Other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
