package telemetry

// Event is a typed occurrence that can project itself into a DynamicEvent.
// Type returns a tag the backend uses to pick a schema, so it must stay
// stable across releases. Populate writes every field of the record and
// nothing else; it cannot fail.
type Event interface {
	Type() string
	Populate(e *DynamicEvent)
}

// Type tags. Each one is a table key in the log backend.
const (
	TypeParentMismatch     = "parent_mismatch"
	TypeDaemonStart        = "daemon_start"
	TypeDaemonStop         = "daemon_stop"
	TypeFinishedCheckout   = "checkout"
	TypeFinishedMount      = "mount"
	TypeFuseError          = "fuse_error"
	TypeRocksDbAutomaticGc = "rocksdb_autogc"
	TypeThriftError        = "thrift_error"
	TypeThriftAuthFailure  = "thrift_auth_failure"
)

var (
	_ Event = ParentMismatch{}
	_ Event = DaemonStart{}
	_ Event = DaemonStop{}
	_ Event = FinishedCheckout{}
	_ Event = FinishedMount{}
	_ Event = FuseError{}
	_ Event = RocksDbAutomaticGc{}
	_ Event = ThriftError{}
	_ Event = ThriftAuthFailure{}
)

// ParentMismatch is logged when the working copy parent recorded by Mercurial
// differs from the one the daemon has checked out.
type ParentMismatch struct {
	MercurialParent string
	EdenParent      string
}

func (ParentMismatch) Type() string { return TypeParentMismatch }

func (p ParentMismatch) Populate(e *DynamicEvent) {
	e.AddString(FieldMercurialParent, p.MercurialParent)
	e.AddString(FieldEdenParent, p.EdenParent)
}

// DaemonStart is logged once the daemon finished starting, successfully or not.
// Duration is in seconds.
type DaemonStart struct {
	Duration   float64
	IsTakeover bool
	Success    bool
}

func (DaemonStart) Type() string { return TypeDaemonStart }

func (d DaemonStart) Populate(e *DynamicEvent) {
	e.AddDouble(FieldDuration, d.Duration)
	e.AddBool(FieldIsTakeover, d.IsTakeover)
	e.AddBool(FieldSuccess, d.Success)
}

// DaemonStop is logged when the daemon shuts down. Duration is the uptime in
// seconds.
type DaemonStop struct {
	Duration   float64
	IsTakeover bool
	Success    bool
}

func (DaemonStop) Type() string { return TypeDaemonStop }

func (d DaemonStop) Populate(e *DynamicEvent) {
	e.AddDouble(FieldDuration, d.Duration)
	e.AddBool(FieldIsTakeover, d.IsTakeover)
	e.AddBool(FieldSuccess, d.Success)
}

// FinishedCheckout records the outcome of a checkout operation.
type FinishedCheckout struct {
	Mode         string
	Duration     float64
	Success      bool
	FetchedTrees int64
	FetchedBlobs int64
}

func (FinishedCheckout) Type() string { return TypeFinishedCheckout }

func (c FinishedCheckout) Populate(e *DynamicEvent) {
	e.AddString(FieldMode, c.Mode)
	e.AddDouble(FieldDuration, c.Duration)
	e.AddBool(FieldSuccess, c.Success)
	e.AddInt(FieldFetchedTrees, c.FetchedTrees)
	e.AddInt(FieldFetchedBlobs, c.FetchedBlobs)
}

// FinishedMount records the outcome of mounting a checkout. Clean reports
// whether the previous unmount was clean.
type FinishedMount struct {
	RepoType   string
	RepoSource string
	IsTakeover bool
	Duration   float64
	Success    bool
	Clean      bool
}

func (FinishedMount) Type() string { return TypeFinishedMount }

func (m FinishedMount) Populate(e *DynamicEvent) {
	e.AddString(FieldRepoType, m.RepoType)
	e.AddString(FieldRepoSource, m.RepoSource)
	e.AddBool(FieldIsTakeover, m.IsTakeover)
	e.AddDouble(FieldDuration, m.Duration)
	e.AddBool(FieldSuccess, m.Success)
	e.AddBool(FieldClean, m.Clean)
}

// FuseError records a FUSE request that failed with an errno.
type FuseError struct {
	FuseOp    int64
	ErrorCode int64
}

func (FuseError) Type() string { return TypeFuseError }

func (f FuseError) Populate(e *DynamicEvent) {
	e.AddInt(FieldFuseOp, f.FuseOp)
	e.AddInt(FieldErrorCode, f.ErrorCode)
}

// RocksDbAutomaticGc records a garbage collection pass over the local store.
// Sizes are in bytes.
type RocksDbAutomaticGc struct {
	Duration   float64
	Success    bool
	SizeBefore int64
	SizeAfter  int64
}

func (RocksDbAutomaticGc) Type() string { return TypeRocksDbAutomaticGc }

func (g RocksDbAutomaticGc) Populate(e *DynamicEvent) {
	e.AddDouble(FieldDuration, g.Duration)
	e.AddBool(FieldSuccess, g.Success)
	e.AddInt(FieldSizeBefore, g.SizeBefore)
	e.AddInt(FieldSizeAfter, g.SizeAfter)
}

// ThriftError records a thrift handler that returned an error.
type ThriftError struct {
	ThriftMethod string
}

func (ThriftError) Type() string { return TypeThriftError }

func (t ThriftError) Populate(e *DynamicEvent) {
	e.AddString(FieldThriftMethod, t.ThriftMethod)
}

// ThriftAuthFailure records a thrift call rejected by authorization.
type ThriftAuthFailure struct {
	ThriftMethod string
	Reason       string
}

func (ThriftAuthFailure) Type() string { return TypeThriftAuthFailure }

func (t ThriftAuthFailure) Populate(e *DynamicEvent) {
	e.AddString(FieldThriftMethod, t.ThriftMethod)
	e.AddString(FieldReason, t.Reason)
}
