package store

import "errors"

// Recoverable outcomes. Callers are expected to branch on these; none of
// them indicate a corrupted database.
var (
	// ErrAlreadyInitialized is returned by Initialize when the database
	// already has both the tinfoil_parameters and tinfoil_entries tables.
	ErrAlreadyInitialized = errors.New("store: database is already initialized")

	// ErrKeyExists describes an entry already existing under the given
	// key's hash. Put does not return it: Put reports that case as
	// (false, nil). Put never overwrites; callers wanting update
	// semantics must Delete then Put.
	ErrKeyExists = errors.New("store: key already exists")

	// ErrNotFound is returned by Get when no entry exists under the given
	// key's hash.
	ErrNotFound = errors.New("store: key not found")
)

// Fatal outcomes. These indicate a corrupted database, an unavailable
// resource, or a library bug — never normal operation. Callers should
// surface these loudly rather than retry.
var (
	// ErrVersionMismatch is returned by Unlock when the stored schema
	// version is not the version this implementation understands.
	ErrVersionMismatch = errors.New("store: unsupported schema version")

	// ErrTampered is returned by Get when an entry's HMAC tag fails to
	// verify under the correct master keys. The opcode has already ruled
	// out a wrong password at Unlock time, so a tag failure here means the
	// row itself was modified outside the store's control. Never
	// auto-recovered, never silently dropped.
	ErrTampered = errors.New("store: record failed authentication (database may be tampered)")

	// ErrCryptoFailure wraps a lower-layer cryptographic failure that
	// occurs after a successful authentication check — for example a
	// PKCS#7 padding error on a record whose HMAC tag verified. This is
	// unreachable under honest use; it indicates a library bug, not an
	// attacker, and is kept distinct from ErrTampered for that reason.
	ErrCryptoFailure = errors.New("store: cryptographic operation failed unexpectedly")
)
