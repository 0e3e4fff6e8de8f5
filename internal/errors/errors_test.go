package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadError(t *testing.T) {
	err := NewLoadError("transactions", io.ErrUnexpectedEOF)

	assert.Equal(t, "load dataset transactions: unexpected EOF", err.Error())
	assert.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))

	wrapped := fmt.Errorf("building snapshot: %w", err)
	require.True(t, IsLoadError(wrapped))

	var le *LoadError
	require.True(t, stderrors.As(wrapped, &le))
	assert.Equal(t, "transactions", le.Dataset)
}

func TestSchemaError(t *testing.T) {
	tests := []struct {
		name string
		err  *SchemaError
		want string
	}{
		{
			name: "with column",
			err:  NewSchemaError("transactions", "DATE", "no recognized date column"),
			want: "dataset transactions: column DATE: no recognized date column",
		},
		{
			name: "without column",
			err:  NewSchemaError("products", "", "empty table"),
			want: "dataset products: empty table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, IsSchemaError(tt.err))
			assert.False(t, IsLoadError(tt.err))
		})
	}
}

func TestIsHelpersRejectUnrelatedErrors(t *testing.T) {
	plain := stderrors.New("boom")
	assert.False(t, IsLoadError(plain))
	assert.False(t, IsSchemaError(plain))
}
