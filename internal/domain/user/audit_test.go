package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancernow/internal/domain/document"
)

func TestAuditService_Run(t *testing.T) {
	repo := &MockRepository{
		ListFunc: func(ctx context.Context) ([]*User, error) {
			return []*User{
				{ID: 5, UserType: TypeFreelancer, Document: "111.444.777-35"},
				{ID: 4, UserType: TypeCompany, Document: "11.222.333/0001-81"},
				{ID: 3, UserType: TypeFreelancer},
				{ID: 2, UserType: TypeCompany, Document: "111.444.777-35"},
				{ID: 1, UserType: TypeFreelancer, Document: "111.444.777-00"},
			}, nil
		},
	}

	result, err := NewAuditService(repo, nil, 2).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, result.UsersChecked)
	assert.Equal(t, 1, result.MissingDocs)
	require.Len(t, result.Findings, 2)
	assert.Equal(t, int64(1), result.Findings[0].UserID)
	assert.ErrorIs(t, result.Findings[0].Reason, document.ErrInvalidCPF)
	assert.Equal(t, int64(2), result.Findings[1].UserID)
	assert.ErrorIs(t, result.Findings[1].Reason, ErrDocumentTypeMismatch)
}

func TestAuditService_ListError(t *testing.T) {
	repo := &MockRepository{
		ListFunc: func(ctx context.Context) ([]*User, error) {
			return nil, errors.New("db down")
		},
	}

	_, err := NewAuditService(repo, nil, 0).Run(context.Background())
	assert.Error(t, err)
}

func TestAuditService_Cancelled(t *testing.T) {
	repo := &MockRepository{
		ListFunc: func(ctx context.Context) ([]*User, error) {
			return []*User{{ID: 1, UserType: TypeFreelancer, Document: "111.444.777-35"}}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAuditService(repo, nil, 1).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
