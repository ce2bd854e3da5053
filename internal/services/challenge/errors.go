package challenge

import "fmt"

// ChallengeError is a precondition violation: the caller asked for a
// transition the challenge's current state forbids. These are expected,
// user-facing, and recoverable; nothing was persisted.
type ChallengeError string

// Error implements the error interface
func (e ChallengeError) Error() string {
	return string(e)
}

const (
	// ErrSelfChallenge is returned when a player challenges themselves
	ErrSelfChallenge ChallengeError = "you cannot challenge yourself"

	// ErrExistingChallenge is returned when an open challenge already
	// exists between the pair
	ErrExistingChallenge ChallengeError = "an open challenge already exists between these players"

	// ErrNotAParticipant is returned when the acting player is not part
	// of the challenge
	ErrNotAParticipant ChallengeError = "you are not part of this challenge"

	// ErrChallengeVoided is returned when the operation requires an
	// unvoided challenge
	ErrChallengeVoided ChallengeError = "this challenge has been voided"

	// ErrChallengeNotVoided is returned when un-voiding a challenge that
	// is not voided
	ErrChallengeNotVoided ChallengeError = "this challenge is not voided"

	// ErrChallengeClosed is returned when the challenge is already
	// terminal
	ErrChallengeClosed ChallengeError = "this challenge has been closed"

	// ErrAlreadyConfirmed is returned when the result has already been
	// confirmed
	ErrAlreadyConfirmed ChallengeError = "this match has already been confirmed"

	// ErrNotConfirmed is returned when the operation requires a
	// confirmed result
	ErrNotConfirmed ChallengeError = "this match has not been confirmed yet"

	// ErrNoSuggestedTime is returned when confirming a time with no
	// suggestion pending
	ErrNoSuggestedTime ChallengeError = "no match time has been suggested"

	// ErrOwnSuggestion is returned when a player confirms their own
	// suggested time
	ErrOwnSuggestion ChallengeError = "you cannot confirm your own suggested time"

	// ErrNoMatchTime is returned when reporting a match that was never
	// scheduled
	ErrNoMatchTime ChallengeError = "no match time has been set"

	// ErrMatchNotPlayed is returned when reporting before the scheduled
	// time
	ErrMatchNotPlayed ChallengeError = "this match cannot be reported before its scheduled time"

	// ErrNotReported is returned when confirming a result that was never
	// reported
	ErrNotReported ChallengeError = "this match has not been reported yet"

	// ErrNotTheWinner is returned when someone other than the reported
	// winner confirms the result
	ErrNotTheWinner ChallengeError = "only the winner can confirm this match"

	// ErrAlreadyRematched is returned when a rematch already exists
	ErrAlreadyRematched ChallengeError = "a rematch has already been created for this challenge"

	// ErrNoRematchRequested is returned when accepting a rematch nobody
	// requested
	ErrNoRematchRequested ChallengeError = "no rematch has been requested"

	// ErrOwnRematchRequest is returned when the requester accepts their
	// own rematch request
	ErrOwnRematchRequest ChallengeError = "the other player must accept the rematch"

	// ErrNotCloseable is returned when closing a challenge that is
	// neither confirmed nor voided
	ErrNotCloseable ChallengeError = "this challenge must be confirmed or voided before it can be closed"
)

// NotificationError reports that state was persisted but the follow-up
// announcement failed. The data is correct; only the announcement needs
// operator attention. Returned alongside the operation's output.
type NotificationError struct {
	Err error
}

// Error implements the error interface
func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification failed: %v", e.Err)
}

// Unwrap returns the underlying notifier error
func (e *NotificationError) Unwrap() error {
	return e.Err
}
