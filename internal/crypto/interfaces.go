package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Cipher encrypts and decrypts a single credential value with a key derived
// from the user's master secret. It knows nothing about the network, the
// database or the key holder: the caller passes the secret on every call.
//
// Blob layout (base64 std):
//
//	version(1) ‖ argon time(4) ‖ argon memory(4) ‖ argon threads(1) ‖ salt(16) ‖ nonce(12) ‖ ciphertext+tag
type Cipher interface {
	// Encrypt derives a fresh key from key and a random salt and seals p with
	// AES-256-GCM. Two calls with the same input yield different blobs.
	// Any failure is reported as [ErrEncryptionFailed] with an empty result.
	Encrypt(p models.Plaintext, key models.MasterSecret) (models.CipherText, error)

	// Decrypt reverses Encrypt. A wrong key or a tampered blob fails
	// authentication and returns [ErrDecryptionFailed]; a blob that cannot be
	// parsed additionally matches [ErrMalformedCipherText].
	Decrypt(c models.CipherText, key models.MasterSecret) (models.Plaintext, error)
}

// PasswordHasher hashes account login passwords on the server. It is
// unrelated to credential encryption: the server never sees master secrets.
type PasswordHasher interface {
	// Hash returns an encoded argon2id hash of password in the
	// "$argon2id$v=19$m=...,t=...,p=...$salt$hash" form.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash.
	Verify(password, encoded string) (bool, error)
}
