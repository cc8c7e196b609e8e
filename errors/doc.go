/*
Package errors implements registered, code carrying errors.

Reuse the root errors declared in this package whenever possible and
register an extension specific root error only when a client must be able
to tell it apart from every other failure. Each registered error owns a
unique code, which is what command line tools and other clients match on.

	ErrProposalExpired = errors.Register(1106, "proposal expired")

At the point of failure wrap the root error with context. The first wrap
attaches a stack trace.

	return errors.Wrapf(ErrProposalExpired, "proposal %d", id)

Use fmt verbs to render an error:
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
