package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReference(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		want      bool
	}{
		{name: "valid reference", reference: "79927398713", want: true},
		{name: "wrong check digit", reference: "79927398710", want: false},
		{name: "non numeric", reference: "79927abc713", want: false},
		{name: "empty", reference: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReference(tt.reference))
		})
	}
}
