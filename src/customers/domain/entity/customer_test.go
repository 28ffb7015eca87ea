package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer_Valid(t *testing.T) {
	phone := "11999990000"
	c, err := NewCustomer("Maria Silva", "12345678901", &phone, "01310-100")

	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", c.Name)
	require.NotNil(t, c.Phone)
	assert.Equal(t, phone, *c.Phone)
}

func TestNewCustomer_PhoneIsOptional(t *testing.T) {
	c, err := NewCustomer("Maria Silva", "12345678901", nil, "01310-100")
	require.NoError(t, err)
	assert.Nil(t, c.Phone)
}

func TestNewCustomer_Validations(t *testing.T) {
	tests := []struct {
		name    string
		cname   string
		cpf     string
		cep     string
		wantErr error
	}{
		{"sin nombre", "", "12345678901", "01310-100", ErrNameRequired},
		{"cpf corto", "Maria", "123", "01310-100", ErrInvalidCPF},
		{"cpf largo", "Maria", "123456789012", "01310-100", ErrInvalidCPF},
		{"sin cep", "Maria", "12345678901", "", ErrCEPRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomer(tt.cname, tt.cpf, nil, tt.cep)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
