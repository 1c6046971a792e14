package model

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	DefaultUsername = "admin"
	DefaultPassword = "123456"
)

var (
	credentialHash       = sha1.New
	credentialKeyLength  = 20
	credentialIterations = 4096
)

// Credentials is a single username with a PBKDF2 derived password key.
type Credentials struct {
	Username   string
	Iterations int
	DerivedKey string
	Salt       string
}

// StaticCredentials returns the one accepted username and password pair.
func StaticCredentials() (*Credentials, error) {
	return NewCredentials(DefaultUsername, DefaultPassword)
}

func NewCredentials(username, password string) (*Credentials, error) {
	c := &Credentials{
		Username:   username,
		Iterations: credentialIterations,
	}
	var salt [16]byte
	_, err := rand.Read(salt[:])
	if err != nil {
		return nil, err
	}
	c.Salt = hex.EncodeToString(salt[:])
	c.DerivedKey = hex.EncodeToString(c.derive(password))
	return c, nil
}

func (c Credentials) String() string {
	return "<Credentials Username=" + c.Username + ">"
}

func (c Credentials) derive(password string) []byte {
	return pbkdf2.Key([]byte(password), []byte(c.Salt), c.Iterations, credentialKeyLength, credentialHash)
}

// Validate compares the username and the derived password key in constant time
func (c Credentials) Validate(username, password string) bool {
	key, err := hex.DecodeString(c.DerivedKey)
	if err != nil {
		return false
	}
	userOk := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOk := subtle.ConstantTimeCompare(key, c.derive(password)) == 1
	return userOk && passOk
}
