// Package session хранит учетные данные текущего пользователя между запусками.
// Единственный источник истины о том, кто сейчас аутентифицирован.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

// Store определяет интерфейс хранилища сессии.
// Писать в него могут только поток входа/регистрации, выход и обработчик 401
// в API клиенте; все остальные компоненты — только читают.
type Store interface {
	// Save атомарно сохраняет токен и профиль пользователя:
	// последующее чтение увидит либо обе части, либо ни одной.
	Save(ctx context.Context, token string, user models.User) error
	// Current возвращает сессию, если обе части присутствуют и профиль
	// корректно разбирается. Любое структурное повреждение данных
	// трактуется как отсутствие сессии, а не как ошибка.
	Current(ctx context.Context) (*models.Session, error)
	// Clear удаляет обе части. Идемпотентна.
	Clear(ctx context.Context) error
}

var (
	bucketSession = []byte("session")
	keyToken      = []byte("token")
	keyIdentity   = []byte("identity")
)

const dbFileMode = 0o600

// BoltStore реализует Store поверх bbolt.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time check.
var _ Store = (*BoltStore)(nil)

// Open открывает (или создает) файл хранилища и инициализирует bucket.
func Open(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, dbFileMode, nil)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть хранилище сессии: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, errBucket := tx.CreateBucketIfNotExists(bucketSession)
		return errBucket
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось инициализировать bucket сессии: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close закрывает файл хранилища.
func (s *BoltStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save записывает токен и профиль в одной write-транзакции.
func (s *BoltStore) Save(_ context.Context, token string, user models.User) error {
	identity, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать профиль: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("bucket сессии не найден")
		}
		if errPut := bucket.Put(keyToken, []byte(token)); errPut != nil {
			return fmt.Errorf("не удалось сохранить токен: %w", errPut)
		}
		if errPut := bucket.Put(keyIdentity, identity); errPut != nil {
			return fmt.Errorf("не удалось сохранить профиль: %w", errPut)
		}
		return nil
	})
}

// Current читает обе части в одной view-транзакции.
// Частично записанная или поврежденная сессия никогда не возвращается.
func (s *BoltStore) Current(_ context.Context) (*models.Session, error) {
	var sess *models.Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return nil // Нет bucket — нет сессии
		}

		token := bucket.Get(keyToken)
		identity := bucket.Get(keyIdentity)
		if len(token) == 0 || len(identity) == 0 {
			return nil // Одной из частей нет — сессия отсутствует
		}

		var user models.User
		if errUnmarshal := json.Unmarshal(identity, &user); errUnmarshal != nil {
			// Поврежденный профиль трактуем как отсутствие сессии
			return nil
		}

		sess = &models.Session{Token: string(token), User: user}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать сессию: %w", err)
	}

	return sess, nil
}

// Clear удаляет обе части в одной транзакции. Повторный вызов — no-op.
func (s *BoltStore) Clear(_ context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return nil
		}
		if errDel := bucket.Delete(keyToken); errDel != nil {
			return fmt.Errorf("не удалось удалить токен: %w", errDel)
		}
		if errDel := bucket.Delete(keyIdentity); errDel != nil {
			return fmt.Errorf("не удалось удалить профиль: %w", errDel)
		}
		return nil
	})
}
