/*
Package qfundtest provides test doubles for the framework interfaces:
authenticators, transactions, messages, handlers and decorators, together
with helpers to generate keys, conditions and addresses.
*/
package qfundtest
