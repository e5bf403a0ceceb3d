/*
Package utils provides decorators shared by every handler stack: logging
of each transaction, panic recovery and savepoints that make a transaction
atomic.
*/
package utils
