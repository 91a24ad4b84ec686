// Package session persists the current user's identity between runs.
// The blob stored in BadgerDB is a locally signed JWT: tampering or
// corruption shows up as a signature failure and degrades to "not
// authenticated" instead of a crash on a half-read blob.
package session

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/golang-jwt/jwt/v5"

	"chitchat/domain/chat"
	"chitchat/errors"
)

const sessionKey = "session:current"

// signingKey only guards blob integrity on the local disk; it is not a
// shared secret with the server.
var signingKey = []byte("chitchat_local_session_integrity_key")

type sessionClaims struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	jwt.RegisteredClaims
}

type Store struct {
	db *badger.DB
}

func NewStore(db *badger.DB) *Store {
	return &Store{db: db}
}

// Save signs the user identity and writes it under the fixed session key.
func (s *Store) Save(user chat.User) error {
	claims := &sessionClaims{
		UserID:    user.ID,
		Username:  user.Name,
		AvatarURL: user.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   "chitchat",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(sessionKey), []byte(token))
	})
}

// Load returns the persisted identity. A missing, malformed, or
// tampered blob is errors.ErrNotAuthenticated: callers redirect to the
// login flow, they never see the parse failure.
func (s *Store) Load() (chat.User, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return chat.User{}, errors.ErrNotAuthenticated
		}
		return chat.User{}, fmt.Errorf("read session: %w", err)
	}

	token, err := jwt.ParseWithClaims(string(raw), &sessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil {
		return chat.User{}, errors.ErrNotAuthenticated
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return chat.User{}, errors.ErrNotAuthenticated
	}
	return chat.User{
		ID:        claims.UserID,
		Name:      claims.Username,
		AvatarURL: claims.AvatarURL,
	}, nil
}

// Clear removes the blob. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sessionKey))
	})
}
