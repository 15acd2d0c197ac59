package common

// UnknownStr is the shared fallback name for out-of-range enum values.
const UnknownStr = "unknown"
