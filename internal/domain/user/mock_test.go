package user

import "context"

// MockRepository is a mock implementation of Repository interface
type MockRepository struct {
	CreateFunc        func(ctx context.Context, params CreateParams) (*User, error)
	GetByIDFunc       func(ctx context.Context, id int64) (*User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*User, error)
	ListFunc          func(ctx context.Context) ([]*User, error)
	UpdateProfileFunc func(ctx context.Context, userID int64, params UpdateProfileParams) (*User, error)
}

func (m *MockRepository) Create(ctx context.Context, params CreateParams) (*User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *MockRepository) List(ctx context.Context) ([]*User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockRepository) UpdateProfile(ctx context.Context, userID int64, params UpdateProfileParams) (*User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, params)
	}
	return nil, nil
}
