package planner

import (
	"context"

	"github.com/limaJavier/classplanner/pkg/archive"
	"github.com/limaJavier/classplanner/pkg/generator"
	"github.com/limaJavier/classplanner/pkg/model"
	"go.uber.org/zap"
)

type Options struct {
	// Archive keeps saved states. An in-memory archive is used when nil
	Archive *archive.Archive
	// Generator configures the random state built by Init(nil)
	Generator generator.Options
	Logger    *zap.Logger
	Recorder  model.Recorder
}

// Planner is the entry point of the timetable: the entity API of its store plus state lifecycle operations
type Planner struct {
	*model.Store

	archive   *archive.Archive
	generator generator.Options
	logger    *zap.Logger
}

func New(options Options) *Planner {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	plannerArchive := options.Archive
	if plannerArchive == nil {
		plannerArchive = archive.New(archive.NewMemoryStore(), logger)
	}
	generatorOptions := options.Generator
	if generatorOptions.Logger == nil {
		generatorOptions.Logger = logger
	}

	return &Planner{
		Store:     model.NewStore(model.WithLogger(logger), model.WithRecorder(options.Recorder)),
		archive:   plannerArchive,
		generator: generatorOptions,
		logger:    logger,
	}
}

// Init loads state into the store, or a freshly generated one when state is nil, and returns what was loaded
func (planner *Planner) Init(state *model.State) (model.State, error) {
	var initial model.State
	if state != nil {
		initial = *state
	} else {
		generated, err := generator.Populate(planner.generator)
		if err != nil {
			return model.State{}, err
		}
		initial = generated
	}

	if err := planner.Load(initial); err != nil {
		return model.State{}, err
	}
	loaded := planner.State()
	planner.logger.Info("state initialized",
		zap.String("name", loaded.Name),
		zap.Bool("generated", state == nil),
		zap.Int("users", len(loaded.Users)),
		zap.Int("subjects", len(loaded.Subjects)),
		zap.Int("groups", len(loaded.Groups)),
		zap.Int("slots", len(loaded.Slots)),
	)
	return loaded, nil
}

// Dump serializes the current state
func (planner *Planner) Dump() (string, error) {
	return model.DumpState(planner.State())
}

// Save archives the current state and returns the token it can be restored with
func (planner *Planner) Save(ctx context.Context) (string, error) {
	return planner.archive.Save(ctx, planner.State())
}

// RestoreByToken replaces the current state with the one saved under token
func (planner *Planner) RestoreByToken(ctx context.Context, token string) error {
	state, err := planner.archive.Restore(ctx, token)
	if err != nil {
		return err
	}
	return planner.Load(state)
}

// RestoreLatest replaces the current state with the most recently saved one, consuming its token. A state the
// store rejects leaves both the store and the save stack untouched
func (planner *Planner) RestoreLatest(ctx context.Context) (string, error) {
	_, token, err := planner.archive.RestoreLatest(ctx, planner.Load)
	return token, err
}

func (planner *Planner) Close() error {
	return planner.archive.Close()
}
