/*
Package qfund defines the interfaces used throughout the matching pool
settlement engine, such as: storage, transactions, handlers, addresses and
context helpers.

Records are kept in a KVStore. Every state transition is expressed as a Msg
wrapped in a Tx and processed by a Handler. Handlers are composed with
Decorators (authentication, logging, savepoints) and routed by message path.
Look into this package to get a brief overview of design decisions made
around interfaces and extension building blocks.
*/
package qfund
