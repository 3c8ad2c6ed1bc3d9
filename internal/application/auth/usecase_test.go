package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildmate/buildmate-api/internal/application/auth"
	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/domain"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
	pkgjwt "github.com/buildmate/buildmate-api/pkg/jwt"
)

// fakeUserRepo in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.ErrDuplicateUser
	}
	cp := *user
	f.byEmail[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id, name, phone, address string) (int64, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Name, u.Phone, u.Address = name, phone, address
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) ListDistributors(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byEmail {
		if u.Role == entity.RoleDistributor {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

const testSecret = "auth-test-secret"

func newUseCase() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "buildmate-test",
	})
	return uc, repo
}

func registerReq(role string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:    "new@buildmate.com",
		Password: "password123",
		Name:     "New User",
		Role:     role,
		Phone:    "9876500000",
		Address:  "1 Test Lane",
	}
}

func TestRegister_ThenLogin(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.Register(ctx, registerReq(entity.RoleDistributor))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.RoleDistributor, created.Role)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "new@buildmate.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, created.ID, resp.User.ID)

	// The token must carry the identity and role claims.
	userID, email, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "new@buildmate.com", email)
	assert.Equal(t, entity.RoleDistributor, role)
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.Register(context.Background(), registerReq(entity.RoleConsumer))
	require.NoError(t, err)

	stored := repo.byEmail["new@buildmate.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash,
		"persisted credential must be a hash, never the plaintext")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, registerReq(entity.RoleConsumer))
	require.NoError(t, err)

	_, err = uc.Register(ctx, registerReq(entity.RoleDistributor))
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
}

func TestRegister_InvalidRole(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(context.Background(), registerReq("admin"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_MissingFields(t *testing.T) {
	uc, _ := newUseCase()
	req := registerReq(entity.RoleConsumer)
	req.Name = ""

	_, err := uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestLogin_BadCredentials(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, registerReq(entity.RoleConsumer))
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "new@buildmate.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nobody@buildmate.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
