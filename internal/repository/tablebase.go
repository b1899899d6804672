package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	positionKeyPrefix = "position:"
	positionIndexKey  = "positions"
)

var ErrPositionNotFound = errors.New("position not found")

type TablebaseRepository interface {
	CreateOrUpdate(ctx context.Context, position *entity.Position) error
	GetByBoard(ctx context.Context, board entity.Board) (*entity.Position, error)
	Count(ctx context.Context) (int64, error)
}

type dbTablebase struct {
	client *redis.Client
}

func NewTablebaseRepository(client *redis.Client) TablebaseRepository {
	return &dbTablebase{
		client: client,
	}
}

func (that *dbTablebase) CreateOrUpdate(ctx context.Context, position *entity.Position) error {
	positionJSON, err := json.Marshal(position)
	if err != nil {
		return fmt.Errorf("could not marshal position: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, positionKeyPrefix+position.Board, positionJSON, 0)
		pipe.SAdd(ctx, positionIndexKey, position.Board)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set position: %w", err)
	}

	return nil
}

func (that *dbTablebase) GetByBoard(ctx context.Context, board entity.Board) (*entity.Position, error) {
	response, err := that.client.Get(ctx, positionKeyPrefix+board.String()).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Position{}, ErrPositionNotFound
	}

	if err != nil {
		return &entity.Position{}, fmt.Errorf("failed to get position by board: %w", err)
	}

	var position entity.Position
	if err = json.Unmarshal([]byte(response), &position); err != nil {
		return &entity.Position{}, fmt.Errorf("failed to unmarshal position: %w", err)
	}

	return &position, nil
}

func (that *dbTablebase) Count(ctx context.Context) (int64, error) {
	count, err := that.client.SCard(ctx, positionIndexKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count positions: %w", err)
	}

	return count, nil
}
