package asset

// ListenerHandle identifies a registered load listener; dropping the
// handle (calling Unlisten) unsubscribes it (§4.4's ListenerHandle).
type ListenerHandle uint64

// LoadEvent is broadcast for each completed load that fails or yields
// new content, and for each Remove. Data.Value is nil on failure or on
// removal of the underlying path; Err is set only when the loader
// returned an error.
type LoadEvent[T any] struct {
	Name string
	Ref  AssetRef[T]
	Data AssetData[T]
	Err  error
}
