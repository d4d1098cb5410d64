package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"parse error", ParseError("bad feed", nil, nil), ErrCodeParse},
		{"timeout error", TimeoutError("deadline", nil, nil), ErrCodeTimeout},
		{"wrapped app error", fmt.Errorf("sync: %w", ExternalAPIError("upstream", nil, nil)), ErrCodeExternalAPI},
		{"plain error", errors.New("something"), ErrCodeUnknown},
		{"nil", nil, ErrCodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := DatabaseError("write failed", cause, SourceContext("substack", "example.substack.com"))

	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
	if err.Context["source_kind"] != "substack" {
		t.Errorf("context: %+v", err.Context)
	}
}
