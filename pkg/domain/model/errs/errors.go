package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// Client errors (4xx)
	TagNotFound   = goerr.NewTag("not_found")  // 404
	TagValidation = goerr.NewTag("validation") // 400
	TagConflict   = goerr.NewTag("conflict")   // 409

	// Server errors (5xx)
	TagInternal = goerr.NewTag("internal") // 500
	TagDatabase = goerr.NewTag("database") // 500 (specific to store errors)

	// Generation service errors
	TagLLMError = goerr.NewTag("llm_error")
)

var (
	// Keys attached to errors for structured logging
	RepositoryKey = goerr.NewTypedKey[string]("repository")
	SessionIDKey  = goerr.NewTypedKey[string]("session_id")
)
