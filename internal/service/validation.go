// Package service wraps the repositories with the semantic validation the
// API performs before writing.  Each validation failure is a distinct
// tagged outcome so handlers can pick the right status code and message.
package service

// ValidationError is a semantic-validation failure.  Code identifies the
// rule that fired; Message is what the API returns to the caller.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	// Reservation rules.
	ErrSeatTaken          = &ValidationError{"seat-status-error", "This seat is already taken!"}
	ErrSeatRowInvalid     = &ValidationError{"seat-row-error", "Invalid seat row was given"}
	ErrSeatNumInvalid     = &ValidationError{"seat-num-error", "Invalid seat number was given"}
	ErrShowingUnavailable = &ValidationError{"showing-availability-error", "Invalid showing, it might not exist."}

	// Review rules.
	ErrReviewExists      = &ValidationError{"review-exists", "You have already reviewed this movie!"}
	ErrRatingInvalid     = &ValidationError{"review-rating-invalid", "Given rating is invalid. Valid range is: 1-5"}
	ErrReviewDateInvalid = &ValidationError{"review-date-invalid", "Given date is invalid. Valid syntax is: Year-Month-Day"}

	// Movie rules.
	ErrTitleOccupied   = &ValidationError{"movie-title-occupied", "Movie of that title already exists!"}
	ErrAgeInvalid      = &ValidationError{"movie-age_restriction-invalid", "Given age restriction is invalid"}
	ErrDurationInvalid = &ValidationError{"movie-duration-invalid", "Given duration is invalid"}

	// Showing rules.
	ErrLanguageInvalid = &ValidationError{"showing-language_version-invalid", "Given language version is invalid."}
	ErrPriceInvalid    = &ValidationError{"showing-price-invalid", "Given price is invalid."}
	ErrTimeInvalid     = &ValidationError{"showing-time-invalid", "Given time is invalid. Valid syntax is: hour:minute."}
	ErrDateInvalid     = &ValidationError{"showing-date-invalid", "Given date is invalid. Valid syntax is: year-month-day."}
	ErrHallOccupied    = &ValidationError{"showing-hall-occupied", "At this time the hall is already occupied."}

	// Hall rules.
	ErrHallLayoutInvalid = &ValidationError{"hall-seat-row-invalid", "Given seat or row length is invalid."}
	ErrAliasOccupied     = &ValidationError{"hall-alias-occupied", "Hall of that alias already exists!"}
)
