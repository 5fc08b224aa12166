package core

//go:generate mockgen -source=verify.go -destination=../mock/verify.go -package=mock

// Verifier independently confirms whether an application is actually
// installed, using several fallback evidence sources. A negative result is a
// valid terminal outcome, not an error.
type Verifier interface {
	Verify(id string, hintedMethod string) VerificationResult
}
