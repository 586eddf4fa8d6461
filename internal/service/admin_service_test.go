package service

import (
	"context"
	"testing"

	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAdminServiceWithCredential(t *testing.T, cred *model.AdminCredential) AdminService {
	t.Helper()
	f := newFixture(t)
	if cred != nil {
		require.NoError(t, f.docs.Set(context.Background(), "admin", "credentials", cred))
	}
	return NewAdminService(repository.NewAdminRepository(f.docs, f.cfg))
}

func TestLoginPlainCredential(t *testing.T) {
	s := newAdminServiceWithCredential(t, &model.AdminCredential{UserID: "root", Password: "hunter2"})
	ctx := context.Background()

	assert.NoError(t, s.Login(ctx, "root", "hunter2"))
	assert.NoError(t, s.Login(ctx, " root ", " hunter2 "))

	var unauthorized *UnauthorizedError
	assert.ErrorAs(t, s.Login(ctx, "root", "wrong"), &unauthorized)
	assert.ErrorAs(t, s.Login(ctx, "admin", "hunter2"), &unauthorized)
}

func TestLoginBcryptCredential(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	s := newAdminServiceWithCredential(t, &model.AdminCredential{UserID: "root", Password: string(hash)})

	assert.NoError(t, s.Login(context.Background(), "root", "s3cret"))
	var unauthorized *UnauthorizedError
	assert.ErrorAs(t, s.Login(context.Background(), "root", string(hash)), &unauthorized)
}

func TestLoginMissingInput(t *testing.T) {
	s := newAdminServiceWithCredential(t, &model.AdminCredential{UserID: "root", Password: "x"})
	var vErr *ValidationError
	assert.ErrorAs(t, s.Login(context.Background(), "", "x"), &vErr)
	assert.ErrorAs(t, s.Login(context.Background(), "root", "  "), &vErr)
}

func TestLoginWithoutStoredCredential(t *testing.T) {
	s := newAdminServiceWithCredential(t, nil)
	var nf *NotFoundError
	assert.ErrorAs(t, s.Login(context.Background(), "root", "x"), &nf)
}
