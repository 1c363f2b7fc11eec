//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const (
	userPrefix     = "user:"
	usernamePrefix = "username:"
	emailPrefix    = "email:"
)

type IUserRepository interface {
	Create(user domain.User) error
	FindByID(id domain.UserID) (domain.User, error)
	FindByUsername(username string) (domain.User, error)
	FindAll() ([]domain.User, error)
}

// UserRepository stores users as JSON under "user:<id>", with
// "username:<name>" and "email:<email>" pointing to the id.
type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create fails with ErrUserAlreadyExists when the username or the email is taken.
// Both checks and the three writes happen in one transaction.
func (u *UserRepository) Create(user domain.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	usernameKey := []byte(usernamePrefix + strings.ToLower(user.Username))
	emailKey := []byte(emailPrefix + strings.ToLower(user.Email))

	return u.db.Update(func(txn *badger.Txn) error {
		for _, key := range [][]byte{usernameKey, emailKey} {
			_, err := txn.Get(key)
			if err == nil {
				return errors.ErrUserAlreadyExists
			}
			if !stdErrors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
		}
		if err := txn.Set([]byte(userPrefix+string(user.ID)), data); err != nil {
			return err
		}
		if err := txn.Set(usernameKey, []byte(user.ID)); err != nil {
			return err
		}
		return txn.Set(emailKey, []byte(user.ID))
	})
}

func (u *UserRepository) FindByID(id domain.UserID) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		return getUser(txn, id, &user)
	})
	return user, err
}

func (u *UserRepository) FindByUsername(username string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(usernamePrefix + strings.ToLower(username)))
		if stdErrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return getUser(txn, domain.UserID(id), &user)
	})
	return user, err
}

// FindAll returns every user, most recently created first.
func (u *UserRepository) FindAll() ([]domain.User, error) {
	var users []domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(userPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var user domain.User
			if err := it.Item().Value(func(val []byte) error {
				return decodeUser(val, &user)
			}); err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(users, func(a, b domain.User) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return users, nil
}

func getUser(txn *badger.Txn, id domain.UserID, user *domain.User) error {
	item, err := txn.Get([]byte(userPrefix + string(id)))
	if stdErrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return decodeUser(val, user)
	})
}

// userRecord is the stored form: the domain type never serializes its hash.
type userRecord struct {
	domain.User
	PasswordHash string `json:"password_hash"`
}

func encodeUser(user domain.User) ([]byte, error) {
	return json.Marshal(userRecord{User: user, PasswordHash: user.PasswordHash})
}

func decodeUser(data []byte, user *domain.User) error {
	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*user = rec.User
	user.PasswordHash = rec.PasswordHash
	return nil
}
