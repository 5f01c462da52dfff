package google

import (
	"errors"

	"github.com/deepnoodle-ai/parley/retry"
	"google.golang.org/genai"
)

// apiError adapts a genai API error so retry classification can read its
// HTTP status code. The genai SDK reports the code as a struct field rather
// than a method.
type apiError struct {
	err genai.APIError
}

func (e *apiError) Error() string {
	return e.err.Error()
}

func (e *apiError) StatusCode() int {
	return e.err.Code
}

func (e *apiError) Unwrap() error {
	return e.err
}

var _ retry.APIError = (*apiError)(nil)

// wrapError converts genai API errors into retry-classifiable errors. Other
// errors pass through unchanged.
func wrapError(err error) error {
	var genaiErr genai.APIError
	if errors.As(err, &genaiErr) {
		return &apiError{err: genaiErr}
	}
	return err
}
