// Package session хранит серверные сессии браузера в redis.
//
// В cookie уходит только случайный идентификатор, сам токен доступа upstream
// лежит в redis под этим идентификатором с TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/voucher-console/internal/config"
	"github.com/magabrotheeeer/voucher-console/internal/models"
)

const keyPrefix = "voucher-console:session:"

// ErrNotFound сессия не найдена или истекла.
var ErrNotFound = errors.New("session not found")

// Store хранилище сессий.
type Store struct {
	Db *redis.Client
}

// InitServer подключается к redis и проверяет соединение.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Store, error) {
	const op = "session.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{Db: db}, nil
}

// Create сохраняет сессию и возвращает её идентификатор.
func (s *Store) Create(ctx context.Context, sess models.Session, ttl time.Duration) (string, error) {
	const op = "session.Create"
	if ttl <= 0 {
		return "", fmt.Errorf("%s: non-positive ttl %s", op, ttl)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	id := uuid.NewString()
	if err := s.Db.Set(ctx, keyPrefix+id, data, ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Get возвращает сессию по идентификатору или ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*models.Session, error) {
	const op = "session.Get"
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	val, err := s.Db.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var sess models.Session
	if err := json.Unmarshal(val, &sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sess, nil
}

// Delete удаляет сессию. Отсутствие ключа ошибкой не считается.
func (s *Store) Delete(ctx context.Context, id string) error {
	const op = "session.Delete"
	if err := s.Db.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с redis.
func (s *Store) Close() error {
	return s.Db.Close()
}
