package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Draft-generation (LLM) errors. These surface to the admin UI, so the
// messages stay short and retry-oriented.
var (
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrTimeout           = errors.New("timeout")
	ErrInvalidOutput     = errors.New("invalid model output")
	ErrInvalidAPIKey     = errors.New("invalid API key")
	ErrConfigMissing     = errors.New("configuration missing")
)

func NewRateLimitError(service string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusTooManyRequests,
		err:        ErrRateLimitExceeded,
		Details:    fmt.Sprintf("Rate limit exceeded for %s service", service),
	}
}

func NewTimeoutError(service string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusGatewayTimeout,
		err:        ErrTimeout,
		Details:    fmt.Sprintf("Request to %s service timed out", service),
	}
}

// NewInvalidOutputError reports a model response that could not be parsed
// into a structured draft. Retrying or editing the prompt usually helps.
func NewInvalidOutputError(service string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrInvalidOutput,
		Details:    fmt.Sprintf("Generated content from %s was invalid; retry or adjust the prompt", service),
	}
}

// NewGenerationError covers any remaining model failure that is neither a
// timeout nor a rate limit.
func NewGenerationError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        fmt.Errorf("%s request failed", service),
		Cause:      cause,
	}
}

func NewConfigError(configName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("Configuration error for %s", configName),
		Cause:      cause,
	}
}

func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrTimeout)
}

func IsInvalidOutputError(err error) bool {
	return errors.Is(err, ErrInvalidOutput)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}
