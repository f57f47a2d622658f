package errors

// ErrorCode identifies the category of an AppError in responses and logs
type ErrorCode int32

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_PERMISSION_DENIED
	ErrorCode_UNAUTHENTICATED
	ErrorCode_INVALID_PAYLOAD

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN
	ErrorCode_AUTH_TOKEN_EXPIRED
	ErrorCode_AUTH_INVALID_CREDENTIALS
	ErrorCode_AUTH_USER_NOT_FOUND
	ErrorCode_AUTH_USER_ALREADY_EXISTS
	ErrorCode_AUTH_PASSWORD_MISMATCH
	ErrorCode_AUTH_PASSWORD_TOO_SHORT

	// Transcription proxy
	ErrorCode_TRANSCRIBE_NO_FILE
	ErrorCode_TRANSCRIBE_FILE_TOO_LARGE
	ErrorCode_TRANSCRIBE_KEY_NOT_CONFIGURED
	ErrorCode_TRANSCRIBE_PROVIDER_FAILED

	// Analysis / assessment / journal
	ErrorCode_ANALYSIS_FAILED
	ErrorCode_ANALYSIS_NOT_FOUND
	ErrorCode_ASSESSMENT_INCOMPLETE
	ErrorCode_ASSESSMENT_INVALID_ANSWER
	ErrorCode_JOURNAL_EMPTY_ENTRY
	ErrorCode_EXPORT_INVALID_SCOPE

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED
	ErrorCode_INTEGRATION_CACHE_FAILED
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED

	// Database
	ErrorCode_DB_QUERY_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                        "UNKNOWN",
	ErrorCode_HTTP_OK:                        "OK",
	ErrorCode_INTERNAL:                       "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:               "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                      "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:                 "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:              "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:                "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:                "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:             "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:             "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:       "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:            "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_USER_ALREADY_EXISTS:       "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_AUTH_PASSWORD_MISMATCH:         "AUTH_PASSWORD_MISMATCH",
	ErrorCode_AUTH_PASSWORD_TOO_SHORT:        "AUTH_PASSWORD_TOO_SHORT",
	ErrorCode_TRANSCRIBE_NO_FILE:             "TRANSCRIBE_NO_FILE",
	ErrorCode_TRANSCRIBE_FILE_TOO_LARGE:      "TRANSCRIBE_FILE_TOO_LARGE",
	ErrorCode_TRANSCRIBE_KEY_NOT_CONFIGURED:  "TRANSCRIBE_KEY_NOT_CONFIGURED",
	ErrorCode_TRANSCRIBE_PROVIDER_FAILED:     "TRANSCRIBE_PROVIDER_FAILED",
	ErrorCode_ANALYSIS_FAILED:                "ANALYSIS_FAILED",
	ErrorCode_ANALYSIS_NOT_FOUND:             "ANALYSIS_NOT_FOUND",
	ErrorCode_ASSESSMENT_INCOMPLETE:          "ASSESSMENT_INCOMPLETE",
	ErrorCode_ASSESSMENT_INVALID_ANSWER:      "ASSESSMENT_INVALID_ANSWER",
	ErrorCode_JOURNAL_EMPTY_ENTRY:            "JOURNAL_EMPTY_ENTRY",
	ErrorCode_EXPORT_INVALID_SCOPE:           "EXPORT_INVALID_SCOPE",
	ErrorCode_INTEGRATION_STORAGE_FAILED:     "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:       "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
	ErrorCode_DB_QUERY_FAILED:                "DB_QUERY_FAILED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
