package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model"
	"todoapp/shared/constant"
	"todoapp/shared/timezone"
)

// Todo maps todo records onto Redis primitives: one JSON string value per
// record under model.Key(id), plus a single Redis list under model.ListKey
// holding the ids in creation order so GetAll can avoid a keyspace scan.
//
// Absence is signaled by a zero-value model with a nil error, never by an
// error: backend failures must stay distinguishable from "not found".
type Todo interface {
	Create(ctx context.Context, id string, fields model.Fields) (model.Todo, error)
	Get(ctx context.Context, id string) (model.Todo, error)
	GetAll(ctx context.Context) ([]model.Todo, error)
	Update(ctx context.Context, id string, patch model.Patch) (model.Todo, error)
	Delete(ctx context.Context, id string) (bool, error)
	HealthCheck(ctx context.Context) bool
}

type repositoryImpl struct {
	client *redis.Client
	otel   otel.Otel
}

func New(client *redis.Client, otel otel.Otel) Todo {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

// Create builds the full record from the caller-supplied id and fields,
// stamps both timestamps with the same instant, and issues the value write
// and the index append in one transactional pipeline. Uniqueness of the id
// is the caller's concern: a colliding id overwrites the value and appends
// the id to the index a second time.
func (repo *repositoryImpl) Create(ctx context.Context, id string, fields model.Fields) (res model.Todo, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	now := timezone.Now()
	todo := model.Todo{
		ID:          id,
		Title:       fields.Title,
		Description: fields.Description,
		Completed:   fields.Completed,
		Done:        fields.Done,
		Priority:    fields.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	payload, err := json.Marshal(todo)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to marshal todo")

		return res, fmt.Errorf("failed to marshal todo: %w", err)
	}

	_, err = repo.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, model.Key(id), payload, 0)
		pipe.RPush(ctx, model.ListKey, id)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to store todo")

		return res, fmt.Errorf("failed to store todo: %w", err)
	}

	return todo, nil
}

// Get returns the zero-value model with a nil error when the id is absent.
func (repo *repositoryImpl) Get(ctx context.Context, id string) (res model.Todo, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	payload, err := repo.client.Get(ctx, model.Key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return res, nil
		}

		log.Error().Err(err).Str("id", id).Msg("failed to read todo")

		return res, fmt.Errorf("failed to read todo: %w", err)
	}

	if err = json.Unmarshal([]byte(payload), &res); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to unmarshal todo")

		return model.Todo{}, fmt.Errorf("failed to unmarshal todo: %w", err)
	}

	return res, nil
}

// GetAll reads the index list in insertion order and fetches every record in
// a single MGET. Ids whose record is gone are skipped, so the result depends
// only on primary-key presence and tolerates index drift.
func (repo *repositoryImpl) GetAll(ctx context.Context) (res []model.Todo, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	ids, err := repo.client.LRange(ctx, model.ListKey, 0, -1).Result()
	if err != nil {
		log.Error().Err(err).Msg("failed to read todo index")

		return nil, fmt.Errorf("failed to read todo index: %w", err)
	}

	res = make([]model.Todo, 0, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = model.Key(id)
	}

	values, err := repo.client.MGet(ctx, keys...).Result()
	if err != nil {
		log.Error().Err(err).Msg("failed to read todos")

		return nil, fmt.Errorf("failed to read todos: %w", err)
	}

	for i, value := range values {
		payload, ok := value.(string)
		if !ok {
			// Dangling index entry: the record was removed without index
			// cleanup. Filtered here, never repaired.
			log.Warn().Str("id", ids[i]).Msg("skipping todo id with no record")

			continue
		}

		var todo model.Todo
		if err = json.Unmarshal([]byte(payload), &todo); err != nil {
			log.Error().Err(err).Str("id", ids[i]).Msg("failed to unmarshal todo")

			return nil, fmt.Errorf("failed to unmarshal todo: %w", err)
		}

		res = append(res, todo)
	}

	return res, nil
}

// Update applies only the non-nil patch fields over the stored record and
// refreshes updated_at. The index is untouched: the id is already present.
// Absence is the zero-value sentinel, like Get.
func (repo *repositoryImpl) Update(ctx context.Context, id string, patch model.Patch) (res model.Todo, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	todo, err := repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if todo.ID == "" {
		return res, nil
	}

	if patch.Title != nil {
		todo.Title = *patch.Title
	}

	if patch.Description != nil {
		todo.Description = *patch.Description
	}

	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}

	if patch.Done != nil {
		todo.Done = *patch.Done
	}

	if patch.Priority != nil {
		todo.Priority = *patch.Priority
	}

	todo.UpdatedAt = timezone.Now()

	payload, err := json.Marshal(todo)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to marshal todo")

		return res, fmt.Errorf("failed to marshal todo: %w", err)
	}

	if err = repo.client.Set(ctx, model.Key(id), payload, 0).Err(); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to store todo")

		return res, fmt.Errorf("failed to store todo: %w", err)
	}

	return todo, nil
}

// Delete removes the primary key first: its presence is the authoritative
// existence signal. The index entry is removed only when the record was
// actually deleted, so a delete of an absent id never mutates the index.
func (repo *repositoryImpl) Delete(ctx context.Context, id string) (deleted bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	removed, err := repo.client.Del(ctx, model.Key(id)).Result()
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete todo")

		return false, fmt.Errorf("failed to delete todo: %w", err)
	}

	if removed == 0 {
		return false, nil
	}

	if err = repo.client.LRem(ctx, model.ListKey, 1, id).Err(); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to remove todo id from index")

		return false, fmt.Errorf("failed to remove todo id from index: %w", err)
	}

	return true, nil
}

// HealthCheck pings the backend and reports the outcome as a boolean; it
// never surfaces the underlying error.
func (repo *repositoryImpl) HealthCheck(ctx context.Context) bool {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".HealthCheck")
	defer scope.End()

	if err := repo.client.Ping(ctx).Err(); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("redis ping failed")

		return false
	}

	return true
}
