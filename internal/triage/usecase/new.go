package usecase

import (
	"sync"

	"engagement-srv/internal/triage"
	"engagement-srv/internal/triage/engine"
	"engagement-srv/internal/triage/repository"
	"engagement-srv/pkg/gemini"
	"engagement-srv/pkg/kafka"
	"engagement-srv/pkg/log"
)

const defaultAuditTopic = "engagement.audit"

// Config holds triage usecase configuration.
type Config struct {
	AuditTopic string
}

type implUseCase struct {
	repo      repository.PostgresRepository
	redisRepo repository.RedisRepository
	gemini    gemini.IGemini
	producer  kafka.IProducer
	l         log.Logger
	config    Config

	mu          sync.Mutex
	feeds       map[string]*engine.Store // workspace id -> cached feed
	seq         *engine.SeqGuard
	suggestions *engine.SuggestionCache
}

// New creates a new triage UseCase implementation.
func New(
	repo repository.PostgresRepository,
	redisRepo repository.RedisRepository,
	geminiClient gemini.IGemini,
	producer kafka.IProducer,
	l log.Logger,
	cfg Config,
) triage.UseCase {
	if cfg.AuditTopic == "" {
		cfg.AuditTopic = defaultAuditTopic
	}

	return &implUseCase{
		repo:        repo,
		redisRepo:   redisRepo,
		gemini:      geminiClient,
		producer:    producer,
		l:           l,
		config:      cfg,
		feeds:       make(map[string]*engine.Store),
		seq:         engine.NewSeqGuard(),
		suggestions: engine.NewSuggestionCache(),
	}
}

// feed returns the cached feed store for a workspace, creating it on first use.
func (uc *implUseCase) feed(workspaceID string) *engine.Store {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.feeds[workspaceID]
	if !ok {
		s = engine.NewStore()
		uc.feeds[workspaceID] = s
	}
	return s
}
