/*
Package x holds the extensions that plug into the qfund framework.

The root of this package defines the Authenticator used by handlers to
learn who signed a transaction. Sub-packages provide the decorators and
handlers themselves: x/sigs verifies signatures, x/utils carries generic
transaction decorators, and x/matching implements the
matching pool settlement engine.
*/
package x
