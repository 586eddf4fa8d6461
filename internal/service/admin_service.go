package service

import (
	"context"
	"strings"

	"github.com/lshigami/examadmin/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AdminService interface {
	// Login checks the credentials against the stored admin record. It issues
	// no session or token.
	Login(ctx context.Context, userID, password string) error
}

type adminService struct {
	repo repository.AdminRepository
}

func NewAdminService(repo repository.AdminRepository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) Login(ctx context.Context, userID, password string) error {
	userID = strings.TrimSpace(userID)
	password = strings.TrimSpace(password)
	if userID == "" || password == "" {
		return newValidationError("userid and password are required")
	}

	cred, err := s.repo.FindCredential(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load admin credentials")
		return translate(err, "admin credentials", "load admin credentials")
	}

	stored := strings.TrimSpace(cred.Password)
	if strings.TrimSpace(cred.UserID) != userID {
		return &UnauthorizedError{Message: "invalid credentials"}
	}
	if isBcryptHash(stored) {
		if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) != nil {
			return &UnauthorizedError{Message: "invalid credentials"}
		}
		return nil
	}
	if stored != password {
		return &UnauthorizedError{Message: "invalid credentials"}
	}
	return nil
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && strings.HasPrefix(s, "$2")
}
