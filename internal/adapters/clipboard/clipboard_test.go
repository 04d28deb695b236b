package clipboard

import (
	"errors"
	"testing"

	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSystemWriteAll(t *testing.T) {
	var got string
	original := writeAll
	writeAll = func(text string) error {
		got = text
		return nil
	}
	t.Cleanup(func() { writeAll = original })

	cb := NewSystem()
	assert.NoError(t, cb.WriteAll("Formal text."))
	assert.Equal(t, "Formal text.", got)

	assert.ErrorIs(t, cb.WriteAll(""), domain.ErrNothingToCopy)
}

func TestSystemWriteAllWrapsErrors(t *testing.T) {
	original := writeAll
	cause := errors.New("no xclip")
	writeAll = func(string) error { return cause }
	t.Cleanup(func() { writeAll = original })

	err := NewSystem().WriteAll("x")
	assert.ErrorIs(t, err, cause)
}

func TestMemory(t *testing.T) {
	m := &Memory{}
	assert.ErrorIs(t, m.WriteAll(""), domain.ErrNothingToCopy)
	assert.NoError(t, m.WriteAll("copied"))
	assert.Equal(t, "copied", m.Text)
}
