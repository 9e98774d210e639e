package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type testKinded struct{ kind string }

func (e *testKinded) Error() string { return "boom: " + e.kind }
func (e *testKinded) Kind() string  { return e.kind }

func TestClassifyRecoversWrappedKind(t *testing.T) {
	base := &testKinded{kind: InputValidation}
	wrapped := fmt.Errorf("tool failed: %w", base)
	require.Equal(t, InputValidation, Classify(wrapped))
}

func TestClassifyReturnsUnknownForPlainError(t *testing.T) {
	require.Equal(t, Unknown, Classify(errors.New("unclassified")))
}

func TestClassifyEmptyForNilError(t *testing.T) {
	require.Equal(t, "", Classify(nil))
}
