package user

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"freelancernow/internal/domain/document"
)

// DefaultAuditWorkers is the default number of concurrent audit workers
const DefaultAuditWorkers = 4

// AuditFinding describes a stored profile whose document no longer holds up.
type AuditFinding struct {
	UserID   int64
	UserType Type
	Document string
	Reason   error
}

// AuditResult contains the results of a document audit
type AuditResult struct {
	UsersChecked int
	MissingDocs  int
	Findings     []AuditFinding
}

// AuditService re-validates the documents stored on every profile.
type AuditService struct {
	repo        Repository
	log         *zap.Logger
	workerCount int
}

func NewAuditService(repo Repository, log *zap.Logger, workerCount int) *AuditService {
	if workerCount <= 0 {
		workerCount = DefaultAuditWorkers
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AuditService{repo: repo, log: log, workerCount: workerCount}
}

// Run checks all profiles concurrently. Findings are sorted by user ID.
func (s *AuditService) Run(ctx context.Context) (*AuditResult, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := &AuditResult{UsersChecked: len(users)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerCount)

	for _, u := range users {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			finding, missing := auditUser(u)

			mu.Lock()
			defer mu.Unlock()
			if missing {
				result.MissingDocs++
			}
			if finding != nil {
				result.Findings = append(result.Findings, *finding)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result.Findings, func(i, j int) bool {
		return result.Findings[i].UserID < result.Findings[j].UserID
	})

	s.log.Info("document audit completed",
		zap.Int("checked", result.UsersChecked),
		zap.Int("missing", result.MissingDocs),
		zap.Int("findings", len(result.Findings)),
	)
	return result, nil
}

func auditUser(u *User) (*AuditFinding, bool) {
	if document.Clean(u.Document) == "" {
		return nil, true
	}

	res := document.Validate(u.Document)
	reason := res.Err()
	if reason == nil {
		reason = CheckDocumentType(u.UserType, res.Type)
	}
	if reason == nil {
		return nil, false
	}
	return &AuditFinding{
		UserID:   u.ID,
		UserType: u.UserType,
		Document: u.Document,
		Reason:   reason,
	}, false
}
