package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancernow/internal/domain/user"
	"freelancernow/internal/infrastructure/crypto"
)

// fakeRow feeds fixed values to Scan in column order.
type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	if len(dest) != len(f.values) {
		return fmt.Errorf("scan: got %d destinations, want %d", len(dest), len(f.values))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = f.values[i].(int64)
		case *string:
			*p = f.values[i].(string)
		case *time.Time:
			*p = f.values[i].(time.Time)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

func newTestRepo(t *testing.T) (*UserRepository, *crypto.Encryptor) {
	t.Helper()
	enc, err := crypto.NewEncryptor("01234567890123456789012345678901")
	require.NoError(t, err)
	return NewUserRepository(nil, enc), enc
}

func userRow(userType, storedDoc string) fakeRow {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return fakeRow{values: []any{
		int64(42), "bia@example.com", "Bia", userType, storedDoc, "", "",
		"", "cook", "Recife", "", now, now,
	}}
}

func TestScanUser_DecryptsDocument(t *testing.T) {
	repo, enc := newTestRepo(t)
	stored, err := enc.Encrypt("11.222.333/0001-81")
	require.NoError(t, err)

	u, err := repo.scanUser(userRow("company", stored))
	require.NoError(t, err)

	assert.Equal(t, int64(42), u.ID)
	assert.Equal(t, user.TypeCompany, u.UserType)
	assert.Equal(t, "11.222.333/0001-81", u.Document)
	assert.Equal(t, "cook", u.Area)
}

func TestScanUser_EmptyDocument(t *testing.T) {
	repo, _ := newTestRepo(t)

	u, err := repo.scanUser(userRow("freelancer", ""))
	require.NoError(t, err)
	assert.Empty(t, u.Document)
}

func TestScanUser_Errors(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.scanUser(userRow("freelancer", "c2hvcnQ="))
	assert.ErrorIs(t, err, crypto.ErrInvalidCiphertext)

	boom := errors.New("boom")
	_, err = repo.scanUser(fakeRow{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("other")))
	assert.False(t, isUniqueViolation(nil))
}
