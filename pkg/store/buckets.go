package store

// The following are the names of buckets used by the store.
const (
	bucketCursor = "cursor"
	bucketTodo   = "todo"
)
