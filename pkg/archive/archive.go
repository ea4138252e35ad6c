package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/limaJavier/classplanner/pkg/model"
	"go.uber.org/zap"
)

const (
	stackKey    = "stack"
	statePrefix = "state:"
)

// Archive saves dumped states under fresh tokens and remembers the order in which they were saved
type Archive struct {
	blobs  BlobStore
	logger *zap.Logger
}

func New(blobs BlobStore, logger *zap.Logger) *Archive {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Archive{blobs: blobs, logger: logger}
}

// Save stores state under a new token and pushes the token onto the save stack
func (archive *Archive) Save(ctx context.Context, state model.State) (string, error) {
	dump, err := model.DumpState(state)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := archive.blobs.Set(ctx, statePrefix+token, dump); err != nil {
		return "", fmt.Errorf("cannot store state %v: %w", token, err)
	}
	if err := archive.blobs.Push(ctx, stackKey, token); err != nil {
		return "", fmt.Errorf("cannot push token %v: %w", token, err)
	}

	archive.logger.Info("state saved", zap.String("token", token), zap.String("name", state.Name), zap.Int("bytes", len(dump)))
	return token, nil
}

// Restore reads back the state saved under token. The save stack is left untouched
func (archive *Archive) Restore(ctx context.Context, token string) (model.State, error) {
	dump, err := archive.blobs.Get(ctx, statePrefix+token)
	if errors.Is(err, ErrMissing) {
		return model.State{}, fmt.Errorf("%w: token %v", ErrMissing, token)
	} else if err != nil {
		return model.State{}, err
	}

	state, err := model.StateFromJSON([]byte(dump))
	if err != nil {
		return model.State{}, fmt.Errorf("cannot decode state %v: %w", token, err)
	}
	archive.logger.Info("state restored", zap.String("token", token), zap.String("name", state.Name))
	return state, nil
}

// RestoreLatest restores the state under the most recent token of the save stack and hands it to apply, which may
// be nil. The token is popped only after apply accepts the state, so a rejected state stays on the stack
func (archive *Archive) RestoreLatest(ctx context.Context, apply func(model.State) error) (model.State, string, error) {
	token, err := archive.blobs.Peek(ctx, stackKey)
	if err != nil {
		return model.State{}, "", err
	}
	state, err := archive.Restore(ctx, token)
	if err != nil {
		return model.State{}, "", err
	}
	if apply != nil {
		if err := apply(state); err != nil {
			return model.State{}, "", fmt.Errorf("state %v rejected: %w", token, err)
		}
	}

	popped, err := archive.blobs.Pop(ctx, stackKey)
	if err != nil {
		return model.State{}, "", err
	}
	if popped != token {
		archive.logger.Warn("save stack changed while restoring", zap.String("restored", token), zap.String("popped", popped))
	}
	return state, token, nil
}

func (archive *Archive) Close() error {
	return archive.blobs.Close()
}
