package store

// Table names are load-bearing: they must match exactly for interoperability
// with databases created by other tinfoil-compatible implementations.
const (
	parametersTable = "tinfoil_parameters"
	entriesTable    = "tinfoil_entries"
)

const schemaVersion = 1

// opcodePlaintext is the fixed 31-byte ASCII sentinel encrypted and
// authenticated at initialization and verified on every unlock. It must
// never change: doing so would break compatibility with every existing
// tinfoil database.
const opcodePlaintext = "jX40TyIOkUMMGYLePilPb8BwxSwkYiJ"

// Default Scrypt and key-size parameters, matching the original tinfoil
// implementation's defaults.
const (
	DefaultScryptN    = 1 << 19 // literal N, not the exponent
	DefaultScryptR    = 8
	DefaultScryptP    = 1
	DefaultAESKeySize = 32 // AES-256
	DefaultHMACKeySize = 64 // HMAC-SHA-512

	scryptSaltSize = 16
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS ` + parametersTable + ` (
		version            INTEGER NOT NULL,
		scrypt_n           INTEGER NOT NULL,
		scrypt_r           INTEGER NOT NULL,
		scrypt_p           INTEGER NOT NULL,
		scrypt_salt        BLOB NOT NULL,
		aes_key_size       INTEGER NOT NULL,
		hmac_key_size      INTEGER NOT NULL,
		opcode_plaintext   BLOB NOT NULL,
		opcode_iv          BLOB NOT NULL,
		opcode_encrypted   BLOB NOT NULL,
		opcode_hmac        BLOB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ` + entriesTable + ` (
		hashed_key         BLOB UNIQUE NOT NULL,
		encrypted_value    BLOB NOT NULL,
		iv                 BLOB NOT NULL,
		hmac_signature     BLOB NOT NULL
	)`,
}
