/*
Package gconf keeps one configuration record per extension in the store.

A configuration lives under the "_c:<package>" key. It is seeded from the
conf section of the genesis and afterwards only changes through a patch
message signed by the configuration owner, see UpdateHandler.
*/
package gconf
