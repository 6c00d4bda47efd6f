package usecases

import (
	"context"
	"time"

	"datadesk/internal/domain/company"
	"datadesk/internal/domain/systemlog"
	"datadesk/internal/domain/user"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// LoginCommand represents the input for logging in
type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
	UserAgent string
}

// LoginResult represents the output of a successful login
type LoginResult struct {
	AccessToken string
	User        UserDTO
}

// LoginUseCase authenticates a user and issues an access token
type LoginUseCase struct {
	userRepo    user.Repository
	companyRepo company.Repository
	logRepo     systemlog.Repository
	verifier    PasswordVerifier
	tokens      TokenGenerator
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	companyRepo company.Repository,
	logRepo systemlog.Repository,
	verifier PasswordVerifier,
	tokens TokenGenerator,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		logRepo:     logRepo,
		verifier:    verifier,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	u, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		// Same answer for an unknown username and a wrong password
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.verifier.Verify(cmd.Password, u.HashedPassword()); err != nil {
		uc.logger.Warnw("login rejected, bad password",
			"username", cmd.Username,
			"ip", cmd.IPAddress,
		)
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	companyName, err := uc.checkLicense(ctx, u)
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(u.ID(), u.Username(), u.Role(), u.CompanyID(), u.BranchID())
	if err != nil {
		uc.logger.Errorw("failed to issue access token",
			"user_id", u.ID(),
			"error", err,
		)
		return nil, apperrors.NewInternalError("failed to issue access token")
	}

	uc.recordLogin(ctx, u, companyName, cmd)

	uc.logger.Infow("user logged in",
		"user_id", u.ID(),
		"username", u.Username(),
		"company_id", u.CompanyID(),
	)

	return &LoginResult{
		AccessToken: token,
		User:        toUserDTO(u),
	}, nil
}

// checkLicense rejects logins into companies whose license has expired.
// Super admins belong to the platform operator and are exempt.
func (uc *LoginUseCase) checkLicense(ctx context.Context, u *user.User) (string, error) {
	if u.Role().IsSuperAdmin() {
		return "", nil
	}

	c, err := uc.companyRepo.FindByID(ctx, u.CompanyID())
	if err != nil {
		uc.logger.Errorw("failed to load company during login",
			"company_id", u.CompanyID(),
			"error", err,
		)
		return "", err
	}

	if c.IsLicenseExpired(time.Now()) {
		return "", apperrors.NewForbiddenError("company license has expired")
	}

	return c.Name(), nil
}

// recordLogin appends a LOGIN audit entry. Audit failures are logged but do
// not fail the login.
func (uc *LoginUseCase) recordLogin(ctx context.Context, u *user.User, companyName string, cmd LoginCommand) {
	entry, err := systemlog.NewEntry(
		u.ID(),
		u.Name(),
		u.CompanyID(),
		companyName,
		systemlog.ActionLogin,
		"auth",
		"User logged in",
		cmd.IPAddress,
		cmd.UserAgent,
	)
	if err != nil {
		uc.logger.Warnw("failed to build login audit entry", "user_id", u.ID(), "error", err)
		return
	}

	if err := uc.logRepo.Append(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record login audit entry", "user_id", u.ID(), "error", err)
	}
}

func (uc *LoginUseCase) validateCommand(cmd LoginCommand) error {
	var missing []string

	if len(cmd.Username) == 0 {
		missing = append(missing, "username")
	}
	if len(cmd.Password) == 0 {
		missing = append(missing, "password")
	}

	if len(missing) > 0 {
		return apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	return nil
}
