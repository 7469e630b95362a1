// Package store owns the on-disk relational schema, enforces the
// initialize/unlock/get/put/delete lifecycle, derives master keys on
// unlock, and exposes the public operations front ends call. It is the
// only component in tinfoil with mutable state; internal/cryptoprim and
// internal/envelope below it are stateless.
//
// Grounded on the original tinfoildb.py for schema and lifecycle, and on
// the teacher's example/database.go for Go persistence idiom: an *sql.DB
// held behind a struct with its own logger, migrations run as a slice of
// CREATE TABLE statements, one commit per mutating call.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"tinfoil/internal/cryptoprim"
	"tinfoil/internal/envelope"
)

// Store is a handle to a tinfoil database file. The zero value is not
// usable; construct one with New.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
	audit  auditTrail

	// Present only while unlocked; both nil otherwise. Invariant: either
	// both are set or neither is.
	masterAESKey  []byte
	masterHMACKey []byte
}

// Params describes the creation-time-immutable Scrypt and key-size
// parameters recorded in the parameters row.
type Params struct {
	ScryptN     int
	ScryptR     int
	ScryptP     int
	AESKeySize  int
	HMACKeySize int
}

// DefaultParams returns the original tinfoil implementation's default
// Scrypt cost parameters and key sizes.
func DefaultParams() Params {
	return Params{
		ScryptN:     DefaultScryptN,
		ScryptR:     DefaultScryptR,
		ScryptP:     DefaultScryptP,
		AESKeySize:  DefaultAESKeySize,
		HMACKeySize: DefaultHMACKeySize,
	}
}

// New opens or creates the SQLite database file at path. It does not
// derive keys and does not require the file to already be initialized —
// callers discover that with IsInitialized.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping database: %w", err)
	}

	s := &Store{
		db:     db,
		path:   path,
		logger: slog.Default(),
	}
	return s, nil
}

// IsInitialized reports whether both the parameters and entries tables
// exist in the schema.
func (s *Store) IsInitialized() (bool, error) {
	const q = `SELECT count(*) FROM sqlite_master WHERE type = 'table' AND (name = ? OR name = ?)`

	var count int
	if err := s.db.QueryRow(q, parametersTable, entriesTable).Scan(&count); err != nil {
		return false, fmt.Errorf("store: check initialization: %w", err)
	}
	return count == 2, nil
}

// Initialize creates the schema and writes the single parameters row. It
// fails with ErrAlreadyInitialized if IsInitialized already reports true
// (both tables exist). The derived master keys are never cached — the caller
// must call Unlock explicitly afterward, which keeps initialization and
// unlocking symmetric and forces a live password re-entry step from front
// ends.
func (s *Store) Initialize(password string, params Params) error {
	initialized, err := s.IsInitialized()
	if err != nil {
		return err
	}
	if initialized {
		return ErrAlreadyInitialized
	}

	salt, err := cryptoprim.CSPRNG(scryptSaltSize)
	if err != nil {
		return fmt.Errorf("store: generate salt: %w", err)
	}

	master, err := cryptoprim.Scrypt([]byte(password), salt, params.ScryptN, params.ScryptR, params.ScryptP, params.AESKeySize+params.HMACKeySize)
	if err != nil {
		return fmt.Errorf("store: derive master key: %w", err)
	}
	aesKey := master[:params.AESKeySize]
	hmacKey := master[params.AESKeySize:]

	opcodeEnv, err := envelope.Seal([]byte(opcodePlaintext), aesKey, hmacKey)
	if err != nil {
		return fmt.Errorf("store: seal opcode: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range migrations {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("store: create schema: %w", err)
		}
	}

	insert := `INSERT INTO ` + parametersTable + ` (
		version, scrypt_n, scrypt_r, scrypt_p, scrypt_salt,
		aes_key_size, hmac_key_size,
		opcode_plaintext, opcode_iv, opcode_encrypted, opcode_hmac
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.Exec(insert,
		schemaVersion, params.ScryptN, params.ScryptR, params.ScryptP, salt,
		params.AESKeySize, params.HMACKeySize,
		[]byte(opcodePlaintext), opcodeEnv.IV, opcodeEnv.Ciphertext, opcodeEnv.Tag,
	)
	if err != nil {
		return fmt.Errorf("store: write parameters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit initialization: %w", err)
	}

	s.audit.record("initialize", fmt.Sprintf("scrypt_n=%d", params.ScryptN), true)
	s.logger.Info("tinfoil database initialized", "path", s.path, "scrypt_n", params.ScryptN)
	return nil
}

type storedParams struct {
	version       int
	scryptN       int
	scryptR       int
	scryptP       int
	scryptSalt    []byte
	aesKeySize    int
	hmacKeySize   int
	opcodePlain   []byte
	opcodeIV      []byte
	opcodeCipher  []byte
	opcodeHMAC    []byte
}

func (s *Store) loadParams() (storedParams, error) {
	const q = `SELECT version, scrypt_n, scrypt_r, scrypt_p, scrypt_salt,
		aes_key_size, hmac_key_size, opcode_plaintext, opcode_iv, opcode_encrypted, opcode_hmac
		FROM ` + parametersTable

	var p storedParams
	err := s.db.QueryRow(q).Scan(
		&p.version, &p.scryptN, &p.scryptR, &p.scryptP, &p.scryptSalt,
		&p.aesKeySize, &p.hmacKeySize, &p.opcodePlain, &p.opcodeIV, &p.opcodeCipher, &p.opcodeHMAC,
	)
	if err != nil {
		return storedParams{}, fmt.Errorf("store: load parameters: %w", err)
	}
	return p, nil
}

// Unlock re-derives the master keys from password using the stored Scrypt
// parameters and verifies them against the stored opcode envelope. It
// returns (true, nil) and adopts the derived keys on success, (false, nil)
// on a wrong password, and a non-nil error only for a genuine I/O or
// version failure — a wrong password is an expected, recoverable outcome,
// not an error.
func (s *Store) Unlock(password string) (bool, error) {
	s.requireInitialized()
	if s.Unlocked() {
		panic("store: Unlock called while already unlocked")
	}

	params, err := s.loadParams()
	if err != nil {
		return false, err
	}
	if params.version != schemaVersion {
		return false, ErrVersionMismatch
	}

	master, err := cryptoprim.Scrypt([]byte(password), params.scryptSalt, params.scryptN, params.scryptR, params.scryptP, params.aesKeySize+params.hmacKeySize)
	if err != nil {
		return false, fmt.Errorf("store: derive master key: %w", err)
	}
	aesKey := master[:params.aesKeySize]
	hmacKey := master[params.aesKeySize:]

	env := envelope.Envelope{IV: params.opcodeIV, Ciphertext: params.opcodeCipher, Tag: params.opcodeHMAC}
	decrypted, err := envelope.Open(env, aesKey, hmacKey)
	if err != nil {
		// Tag verification failed: almost certainly a wrong password.
		s.audit.record("unlock", "opcode authentication failed", false)
		s.logger.Warn("tinfoil unlock failed", "path", s.path, "reason", "opcode authentication failed")
		return false, nil
	}

	// Defense-in-depth against a hypothetical HMAC-key collision on a
	// wrong password: the tag matched, but the plaintext must too.
	if string(decrypted) != string(params.opcodePlain) {
		s.audit.record("unlock", "opcode plaintext mismatch", false)
		s.logger.Warn("tinfoil unlock failed", "path", s.path, "reason", "opcode plaintext mismatch")
		return false, nil
	}

	s.masterAESKey = aesKey
	s.masterHMACKey = hmacKey
	s.audit.record("unlock", "", true)
	s.logger.Info("tinfoil database unlocked", "path", s.path)
	return true, nil
}

// Unlocked reports whether the master keys are currently set.
func (s *Store) Unlocked() bool {
	return s.masterAESKey != nil && s.masterHMACKey != nil
}

func (s *Store) requireUnlocked() {
	if !s.Unlocked() {
		panic("store: operation requires an unlocked database")
	}
}

func (s *Store) requireInitialized() {
	initialized, err := s.IsInitialized()
	if err != nil {
		panic("store: " + err.Error())
	}
	if !initialized {
		panic("store: operation requires an initialized database")
	}
}

// Put encrypts value under the current master keys and inserts it keyed
// by SHA-512(key). It returns (false, nil) — not an error — if an entry
// already exists under that key; overwriting is not supported at this
// layer. Callers wanting update semantics must Delete then Put.
func (s *Store) Put(key, value string) (bool, error) {
	s.requireInitialized()
	s.requireUnlocked()

	hashed := cryptoprim.SHA512([]byte(key))

	env, err := envelope.Seal([]byte(value), s.masterAESKey, s.masterHMACKey)
	if err != nil {
		return false, fmt.Errorf("store: seal value: %w", err)
	}

	const insert = `INSERT INTO ` + entriesTable + ` (hashed_key, encrypted_value, iv, hmac_signature) VALUES (?, ?, ?, ?)`
	_, err = s.db.Exec(insert, hashed[:], env.Ciphertext, env.IV, env.Tag)
	if err != nil {
		if isUniqueConstraintErr(err) {
			return false, nil
		}
		return false, fmt.Errorf("store: insert entry: %w", err)
	}
	return true, nil
}

// Get decrypts and returns the value stored under key. It returns
// ErrNotFound if no entry exists, and ErrTampered if the entry's HMAC tag
// fails to verify — the opcode has already ruled out a wrong password at
// Unlock time, so a tag failure here means the row was modified outside
// the store's control.
func (s *Store) Get(key string) (string, error) {
	s.requireInitialized()
	s.requireUnlocked()

	hashed := cryptoprim.SHA512([]byte(key))

	const q = `SELECT encrypted_value, iv, hmac_signature FROM ` + entriesTable + ` WHERE hashed_key = ?`
	var ciphertext, iv, tag []byte
	err := s.db.QueryRow(q, hashed[:]).Scan(&ciphertext, &iv, &tag)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("store: query entry: %w", err)
	}

	env := envelope.Envelope{IV: iv, Ciphertext: ciphertext, Tag: tag}
	plaintext, err := envelope.Open(env, s.masterAESKey, s.masterHMACKey)
	if err == envelope.ErrAuthenticationFailed {
		s.audit.record("tamper_detected", "HMAC verification failed for a stored entry", false)
		s.logger.Error("tinfoil detected a tampered record", "path", s.path)
		return "", ErrTampered
	}
	if err != nil {
		// Authentication passed but decryption/unpadding failed: a library
		// bug or a correlated corruption, not attacker tampering.
		return "", fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}

	return string(plaintext), nil
}

// Has reports whether an entry exists under key, without decrypting it.
// Unlike Get and Put, Has only requires the database to be initialized,
// not unlocked — it touches only the hashed key. This mirrors the
// original tinfoildb.py's delete_record, which is similarly legal before
// unlock; see DESIGN.md for the Open Question this resolves.
func (s *Store) Has(key string) (bool, error) {
	s.requireInitialized()

	hashed := cryptoprim.SHA512([]byte(key))

	const q = `SELECT count(*) FROM ` + entriesTable + ` WHERE hashed_key = ?`
	var count int
	if err := s.db.QueryRow(q, hashed[:]).Scan(&count); err != nil {
		return false, fmt.Errorf("store: query entry: %w", err)
	}
	return count > 0, nil
}

// Delete removes the entry stored under key, if any. It does not require
// the database to be unlocked (see Has). Deleting an absent key is not an
// error and performs no write.
func (s *Store) Delete(key string) error {
	s.requireInitialized()

	hashed := cryptoprim.SHA512([]byte(key))

	const del = `DELETE FROM ` + entriesTable + ` WHERE hashed_key = ?`
	if _, err := s.db.Exec(del, hashed[:]); err != nil {
		return fmt.Errorf("store: delete entry: %w", err)
	}
	return nil
}

// Close clears the in-memory master keys and closes the database handle.
// Subsequent operations other than New are invalid on this Store.
func (s *Store) Close() error {
	s.masterAESKey = nil
	s.masterHMACKey = nil
	s.audit.record("close", "", true)
	return s.db.Close()
}

func isUniqueConstraintErr(err error) bool {
	// github.com/mattn/go-sqlite3 reports UNIQUE constraint violations with
	// this substring; matching on it avoids importing the driver package's
	// internal sqlite3.Error/ErrNo types here.
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
