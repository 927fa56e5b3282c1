package logic

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"sync"

	"golang.org/x/crypto/nacl/secretbox"

	"post_later/dal"
	"post_later/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_key_store.go -package mocks post_later/logic IKeyStore

const webhookKeyName = "webhook"

type IKeyStore interface {
	// GetSigningKey returns the service's webhook signing key, creating
	// and persisting it on first use.
	GetSigningKey() (*rsa.PrivateKey, error)
	SealToken(plain string) (string, error)
	OpenToken(sealed string) (string, error)
}

type keyStore struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	sealKey [32]byte
	muSign  sync.Mutex
	signKey *rsa.PrivateKey
}

func NewKeyStore(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo) IKeyStore {
	ks := keyStore{cfg: cfg, logger: logger, repo: repo}
	keyBytes, err := hex.DecodeString(cfg.Secrets.TokenSealKey)
	if err != nil || len(keyBytes) != 32 {
		logger.Error("Token seal key must be 64 hex characters")
		panic(&MissingSettingError{Name: "token_seal_key"})
	}
	copy(ks.sealKey[:], keyBytes)
	return &ks
}

func (ks *keyStore) GetSigningKey() (*rsa.PrivateKey, error) {

	ks.muSign.Lock()
	defer ks.muSign.Unlock()

	if ks.signKey != nil {
		return ks.signKey, nil
	}
	privKeyStr, err := ks.repo.GetServiceKey(webhookKeyName)
	if err != nil {
		return nil, err
	}
	if privKeyStr == "" {
		ks.logger.Info("No webhook signing key yet; generating one")
		privKeyStr, err = ks.makeKeyPem()
		if err != nil {
			return nil, err
		}
		if err = ks.repo.AddServiceKey(webhookKeyName, privKeyStr); err != nil {
			return nil, err
		}
	}
	key, err := ks.parseKeyPem(privKeyStr)
	if err != nil {
		return nil, err
	}
	ks.signKey = key
	return key, nil
}

func (ks *keyStore) parseKeyPem(privKeyStr string) (*rsa.PrivateKey, error) {

	var err error

	block, _ := pem.Decode([]byte(privKeyStr))
	if block == nil {
		return nil, errors.New("failed to decode private key PEM")
	}
	privKeyBytes := block.Bytes
	if x509.IsEncryptedPEMBlock(block) {
		privKeyBytes, err = x509.DecryptPEMBlock(block, []byte(ks.cfg.Secrets.KeyStorePass))
		if err != nil {
			return nil, err
		}
	}
	privKey, err := x509.ParsePKCS1PrivateKey(privKeyBytes)
	if err != nil {
		return nil, err
	}
	return privKey, nil
}

func (ks *keyStore) makeKeyPem() (string, error) {

	// Generate RSA key
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", err
	}

	// Encode private key to PKCS#1, with password
	keyRaw := x509.MarshalPKCS1PrivateKey(key)
	encBlock, err := x509.EncryptPEMBlock(
		rand.Reader, "RSA PRIVATE KEY", keyRaw,
		[]byte(ks.cfg.Secrets.KeyStorePass), x509.PEMCipherAES256)
	if err != nil {
		return "", err
	}
	return string(pem.EncodeToMemory(encBlock)), nil
}

// SealToken encrypts an access token for storage. The nonce travels in
// front of the box.
func (ks *keyStore) SealToken(plain string) (string, error) {

	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", err
	}
	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, &ks.sealKey)
	return base64.StdEncoding.EncodeToString(box), nil
}

func (ks *keyStore) OpenToken(sealed string) (string, error) {

	box, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", err
	}
	if len(box) < 24 {
		return "", errors.New("sealed token is too short")
	}
	var nonce [24]byte
	copy(nonce[:], box[:24])
	plain, ok := secretbox.Open(nil, box[24:], &nonce, &ks.sealKey)
	if !ok {
		return "", errors.New("failed to open sealed token")
	}
	return string(plain), nil
}
