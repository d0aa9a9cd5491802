package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

func TestCreateUser_StoresBcryptHash(t *testing.T) {
	repo := &mockUserRepo{}
	var stored domain.User
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(domain.User)
	}).Return(int64(11), nil)

	id, err := NewCreateUserUseCase(repo).Execute(context.Background(), domain.UserInput{
		FirstName: "Anna", Surname: "Andersson", Mail: " anna@example.com ", Password: "buyer123", RoleID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Equal(t, "anna@example.com", stored.Mail)
	assert.NotEqual(t, "buyer123", stored.PasswordHash)
	assert.True(t, stored.CheckPassword("buyer123"))
}

func TestCreateUser_RequiresPassword(t *testing.T) {
	repo := &mockUserRepo{}
	_, err := NewCreateUserUseCase(repo).Execute(context.Background(), domain.UserInput{Mail: "a@b.c"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_PasswordLimitCountsBytes(t *testing.T) {
	repo := &mockUserRepo{}
	var stored domain.User
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(domain.User)
	}).Return(int64(5), nil)
	uc := NewCreateUserUseCase(repo)

	// 40 символов, но 80 байт
	_, err := uc.Execute(context.Background(), domain.UserInput{Mail: "long@x.se", Password: strings.Repeat("é", 40)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	err = NewUpdateUserUseCase(repo).Execute(context.Background(), 5, domain.UserInput{Password: strings.Repeat("a", 73)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	exact := strings.Repeat("é", 36)
	id, err := uc.Execute(context.Background(), domain.UserInput{Mail: "edge@x.se", Password: exact})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.True(t, stored.CheckPassword(exact))
}

func TestCreateUser_DuplicateMail(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("Create", mock.Anything, mock.Anything).
		Return(int64(0), &domain.ConstraintError{Kind: domain.ErrAlreadyExists, Constraint: "users_mail_key"})

	_, err := NewCreateUserUseCase(repo).Execute(context.Background(), domain.UserInput{Mail: "dup@x.se", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestUpdateAndDeleteUser_Missing(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("Update", mock.Anything, int64(99), mock.Anything).Return(nil, nil)
	repo.On("Delete", mock.Anything, int64(99)).Return(nil, nil)

	err := NewUpdateUserUseCase(repo).Execute(context.Background(), 99, domain.UserInput{Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = NewDeleteUserUseCase(repo).Execute(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLoginUser(t *testing.T) {
	hash, err := domain.HashPasswordWithCost("secret123", 4)
	require.NoError(t, err)
	user := &domain.User{ID: 1, Mail: "erik@besthem.se", PasswordHash: hash}

	repo := &mockUserRepo{}
	repo.On("GetByMail", mock.Anything, "erik@besthem.se").Return(user, nil)
	repo.On("GetByMail", mock.Anything, "nobody@besthem.se").Return(nil, nil)
	uc := NewLoginUserUseCase(repo)

	got, err := uc.Execute(context.Background(), "erik@besthem.se", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = uc.Execute(context.Background(), "erik@besthem.se", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Execute(context.Background(), "nobody@besthem.se", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSaveRealtorAgent(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		repo := &mockUserRepo{}
		repo.On("GetByID", mock.Anything, int64(5)).Return(nil, nil)

		_, err := NewSaveRealtorAgentUseCase(repo).Execute(context.Background(), 5, "LIC-1")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		repo.AssertNotCalled(t, "UpsertAgent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank license", func(t *testing.T) {
		_, err := NewSaveRealtorAgentUseCase(&mockUserRepo{}).Execute(context.Background(), 5, "  ")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("upserts", func(t *testing.T) {
		repo := &mockUserRepo{}
		repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil)
		repo.On("UpsertAgent", mock.Anything, int64(5), "LIC-000123").
			Return(&domain.RealtorAgent{ID: 1, UserID: 5, LicenseNumber: "LIC-000123"}, nil)

		agent, err := NewSaveRealtorAgentUseCase(repo).Execute(context.Background(), 5, "LIC-000123")
		require.NoError(t, err)
		assert.Equal(t, "LIC-000123", agent.LicenseNumber)
	})
}

func TestGetRealtorAgent_Absent(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("GetAgent", mock.Anything, int64(2)).Return(nil, nil)

	_, err := NewGetRealtorAgentUseCase(repo).Execute(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrAgentNotFound)
}

// infoLogger запоминает Info-сообщения вместе с полем use_case.
type infoLogger struct {
	useCase string
	lines   *[]string
}

func (l infoLogger) Info(msg string, fields port.Fields) {
	*l.lines = append(*l.lines, l.useCase+": "+msg)
}
func (l infoLogger) Debug(msg string, fields port.Fields)            {}
func (l infoLogger) Warn(msg string, fields port.Fields)             {}
func (l infoLogger) Error(msg string, err error, fields port.Fields) {}
func (l infoLogger) WithFields(fields port.Fields) port.LoggerPort {
	if name, ok := fields["use_case"].(string); ok {
		return infoLogger{useCase: name, lines: l.lines}
	}
	return l
}

func TestUserUseCases_LogStartAndFinish(t *testing.T) {
	var lines []string
	ctx := contextkeys.ContextWithLogger(context.Background(), infoLogger{lines: &lines})

	id := int64(7)
	agent := &domain.RealtorAgent{ID: 2, UserID: 7, LicenseNumber: "LIC-7"}
	repo := &mockUserRepo{}
	repo.On("List", mock.Anything).Return([]domain.User{{ID: 7}}, nil)
	repo.On("GetByID", mock.Anything, id).Return(&domain.User{ID: 7}, nil)
	repo.On("Update", mock.Anything, id, mock.Anything).Return(&id, nil)
	repo.On("Delete", mock.Anything, id).Return(&id, nil)
	repo.On("GetAgent", mock.Anything, id).Return(agent, nil)
	repo.On("UpsertAgent", mock.Anything, id, "LIC-7").Return(agent, nil)

	_, err := NewGetUsersUseCase(repo).Execute(ctx)
	require.NoError(t, err)
	_, err = NewGetUserByIDUseCase(repo).Execute(ctx, id)
	require.NoError(t, err)
	require.NoError(t, NewUpdateUserUseCase(repo).Execute(ctx, id, domain.UserInput{Password: "secret123"}))
	require.NoError(t, NewDeleteUserUseCase(repo).Execute(ctx, id))
	_, err = NewGetRealtorAgentUseCase(repo).Execute(ctx, id)
	require.NoError(t, err)
	_, err = NewSaveRealtorAgentUseCase(repo).Execute(ctx, id, "LIC-7")
	require.NoError(t, err)

	for _, name := range []string{"GetUsers", "GetUserByID", "UpdateUser", "DeleteUser", "GetRealtorAgent", "SaveRealtorAgent"} {
		assert.Contains(t, lines, name+": Use case started")
		assert.Contains(t, lines, name+": Use case finished successfully")
	}
}
