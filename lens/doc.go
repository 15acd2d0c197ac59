// Package lens provides composable runtime accessors: immutable values that
// carry a capability flavor and a route from a root type to a member or a
// tagged-union payload.
//
// An Accessor is built once (by generated code, by hand, or by an adapter)
// and composed with Then/Compose. The flavor suffix convention used by
// generated constructor names is stable:
//
//	R     readable              (total read)
//	W     writable              (total read/write)
//	Fr    failable readable     (read, may be absent)
//	Fw    failable writable     (read/write, may be absent)
//	O     owned                 (consumes the root by value)
//	Fo    failable owned        (consumes, may be absent)
//	FrAt  failable readable, parameterized by index or key
//	FwAt  failable writable, parameterized by index or key
//	CaseR readable union case   (extract + embed)
//	CaseW writable union case   (extract + embed)
//
// Accessors never traverse into lock-guarded payloads; OverLocked and the
// RwMutexed helpers perform scoped acquisition instead.
//
// An Accessor holds its function table behind a shared pointer, so copying
// one is cheap and never re-derives anything. The table is immutable after
// construction, which makes a built Accessor safe to share across
// goroutines; whether invoking it concurrently is safe depends only on the
// root value it is applied to.
package lens
