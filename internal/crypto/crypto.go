// Package crypto seals storage record values with a passphrase-derived key so
// remote backends only ever see ciphertext.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	keyLen  = 32 // AES-256
	saltLen = 16

	scryptN = 32768
	scryptR = 8
	scryptP = 1
)

// ErrDecrypt is the only error surfaced for any failed open: wrong passphrase,
// truncated envelope and tampered ciphertext are indistinguishable to callers.
var ErrDecrypt = errors.New("crypto: unable to decrypt value")

// envelope is the JSON shape a sealed value is stored as. []byte fields are
// base64 via encoding/json.
type envelope struct {
	Enc   string `json:"enc"`
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	Data  []byte `json:"data"`
}

const envelopeScheme = "aes-gcm"

// Cipher seals and opens record values with a user passphrase.
type Cipher struct {
	passphrase []byte
}

// New returns a Cipher for the given passphrase.
func New(passphrase string) (*Cipher, error) {
	if passphrase == "" {
		return nil, errors.New("empty passphrase")
	}
	return &Cipher{passphrase: []byte(passphrase)}, nil
}

// DeriveKey stretches a passphrase into an AES-256 key using scrypt.
func DeriveKey(passphrase, salt []byte) ([]byte, error) {
	return scrypt.Key(passphrase, salt, scryptN, scryptR, scryptP, keyLen)
}

// Seal encrypts a JSON value into an envelope with a fresh salt and nonce.
func (c *Cipher) Seal(value json.RawMessage) (json.RawMessage, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	key, err := DeriveKey(c.passphrase, salt)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	env := envelope{
		Enc:   envelopeScheme,
		Salt:  salt,
		Nonce: nonce,
		Data:  gcm.Seal(nil, nonce, value, nil),
	}
	return json.Marshal(env)
}

// Open decrypts a sealed envelope back into the original JSON value. Any
// failure is reported as ErrDecrypt without further detail.
func (c *Cipher) Open(sealed json.RawMessage) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(sealed, &env); err != nil || env.Enc != envelopeScheme {
		return nil, ErrDecrypt
	}
	key, err := DeriveKey(c.passphrase, env.Salt)
	if err != nil {
		return nil, ErrDecrypt
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, ErrDecrypt
	}
	if len(env.Nonce) != gcm.NonceSize() {
		return nil, ErrDecrypt
	}
	plain, err := gcm.Open(nil, env.Nonce, env.Data, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plain, nil
}

// IsSealed reports whether a raw value looks like one of our envelopes.
func IsSealed(value json.RawMessage) bool {
	var env envelope
	return json.Unmarshal(value, &env) == nil && env.Enc == envelopeScheme
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
