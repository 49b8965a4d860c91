// Package validator builds declarative field checks for request bodies and
// rule definitions.
//
// Each helper returns a Rule pairing a Check func with the ValidationError
// reported when it fails. Apply evaluates rules in order and aggregates the
// failures into ValidationErrors, which satisfies the error interface and
// unwraps to ErrValidationFailed.
//
//	err := validator.Apply(
//	    validator.RequiredString("user_agent", ua),
//	    validator.MinNum("width", width, 0),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    fmt.Println(verrs.Get("width"))
//	}
//
// Rules hold no state, so they are safe to build and apply concurrently.
package validator
