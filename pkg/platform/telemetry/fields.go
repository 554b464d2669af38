package telemetry

// Field names written into a DynamicEvent. These are column names in the log
// backend; renaming one breaks existing queries.
const (
	// Session defaults
	FieldSessionID  = "session_id"
	FieldType       = "type"
	FieldUser       = "user"
	FieldHost       = "host"
	FieldOS         = "os"
	FieldOSVersion  = "osver"
	FieldAppVersion = "edenver"

	// Shared outcome fields
	FieldDuration   = "duration"
	FieldSuccess    = "success"
	FieldIsTakeover = "is_takeover"

	// Parent mismatch
	FieldMercurialParent = "mercurial_parent"
	FieldEdenParent      = "eden_parent"

	// Checkout
	FieldMode         = "mode"
	FieldFetchedTrees = "fetched_trees"
	FieldFetchedBlobs = "fetched_blobs"

	// Mount
	FieldRepoType   = "repo_type"
	FieldRepoSource = "repo_source"
	FieldClean      = "clean"

	// FUSE
	FieldFuseOp    = "fuse_op"
	FieldErrorCode = "error_code"

	// RocksDB GC
	FieldSizeBefore = "size_before"
	FieldSizeAfter  = "size_after"

	// Thrift
	FieldThriftMethod = "thrift_method"
	FieldReason       = "reason"
)
