package crypto

// https://minecraft.wiki/w/Protocol_encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"
)

// ServerContext is the process-wide RSA keypair a server uses to negotiate
// the shared secret with each connecting client. Unlike Encryption (the
// per-connection cipher state), one ServerContext is shared across every
// connection's Login handshake.
type ServerContext struct {
	privateKey   *rsa.PrivateKey
	publicKeyDER []byte
}

// NewServerContext generates a fresh 1024-bit RSA keypair, matching vanilla
// server behavior (the protocol does not require a larger key).
func NewServerContext() (*ServerContext, error) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}
	der, err := ConvertPublicKeyToSPKI(&key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode public key: %w", err)
	}
	return &ServerContext{privateKey: key, publicKeyDER: der}, nil
}

// PublicKeyDER returns the DER-SPKI encoded public key sent in Encryption
// Request.
func (c *ServerContext) PublicKeyDER() []byte {
	return c.publicKeyDER
}

// IssueVerifyToken generates a fresh 4-byte verification token for a single
// Login handshake. Issued per session, not once per server instance.
func IssueVerifyToken() ([]byte, error) {
	token := make([]byte, 4)
	if _, err := io.ReadFull(rand.Reader, token); err != nil {
		return nil, fmt.Errorf("failed to generate verify token: %w", err)
	}
	return token, nil
}

// DecryptRSA decrypts ciphertext (the client-encrypted shared secret or
// verify token) using PKCS#1 v1.5, as Encryption Response requires.
func (c *ServerContext) DecryptRSA(ciphertext []byte) ([]byte, error) {
	plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, c.privateKey, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}

// VerifyToken decrypts encryptedToken and reports whether it matches the
// token issued for this session.
func (c *ServerContext) VerifyToken(issued, encryptedToken []byte) (bool, error) {
	decrypted, err := c.DecryptRSA(encryptedToken)
	if err != nil {
		return false, err
	}
	return constantTimeEqual(issued, decrypted), nil
}

func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

// BuildStreamCipher builds the AES-128/CFB-8 encrypt/decrypt stream pair
// used for the remainder of a connection once the shared secret is known.
// Key and IV are both the shared secret, per protocol.
func BuildStreamCipher(sharedSecret []byte) (encrypt, decrypt cipher.Stream, err error) {
	block, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	return NewEncryptStream(block, sharedSecret), NewDecryptStream(block, sharedSecret), nil
}
