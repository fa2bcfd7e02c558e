package usecase

// IsValidationError tells the HTTP layer whether to answer 400 or 500.
func IsValidationError(err error) bool {
	_, ok := err.(ValidationError)
	return ok
}
