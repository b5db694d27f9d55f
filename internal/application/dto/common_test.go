package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andinosoft/erp-pyme/internal/application/dto"
)

func TestPageRequest_Normalizar(t *testing.T) {
	casos := []struct {
		nombre    string
		in        dto.PageRequest
		wantPage  int
		wantLimit int
	}{
		{"ceros toman defaults", dto.PageRequest{}, 1, 20},
		{"negativos toman defaults", dto.PageRequest{Page: -3, Limit: -1}, 1, 20},
		{"límite se topa en 100", dto.PageRequest{Page: 2, Limit: 500}, 2, 100},
		{"valores válidos quedan igual", dto.PageRequest{Page: 3, Limit: 50}, 3, 50},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			tc.in.Normalizar()
			assert.Equal(t, tc.wantPage, tc.in.Page)
			assert.Equal(t, tc.wantLimit, tc.in.Limit)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	p := dto.PageRequest{Page: 3, Limit: 20}
	assert.Equal(t, 40, p.Offset())
}
