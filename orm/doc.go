/*
Package orm maps typed records onto a KVStore.

A ModelBucket stores one kind of Model under its own key space, prefixed
with the bucket name. Models are serialized with their own Marshal and
Unmarshal methods and validated before every write. Sequence provides
monotonically increasing keys for records without a natural identity.
*/
package orm
