/*
Package errors implements the error kinds used across qfund.

Each error kind is registered with a unique code using Register. Extensions
that need their own kinds register them during package initialization, for
example x/matching registers ErrAlreadyBound.

Create error instances by wrapping a registered kind:

	errors.Wrap(errors.ErrNotFound, "escrow")
	errors.Wrapf(matching.ErrAlreadyBound, "pool %s", pool)

The first wrap attaches a stack trace. Use Is to test the kind of an error at
any wrapping depth. Once you have an error, use fmt to get more context:

	%s is just the error message
	%+v is the full stack trace
*/
package errors
