package user

import "golang.org/x/crypto/bcrypt"

// minPasswordLength is the only password rule the account-creation flow
// enforces besides the confirmation match.
const minPasswordLength = 7

// ServiceInterface lets the cart and order packages resolve users without
// depending on the concrete service.
type ServiceInterface interface {
	GetByID(id int) (User, error)
	GetByUsername(username string) (User, error)
	Create(username, password, confirmPassword string) (User, error)
	Authenticate(username, password string) (User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByUsername(username string) (User, error) {
	return s.repo.GetByUsername(username)
}

// Create validates the password policy, hashes the password and stores the
// user together with its freshly created cart.
func (s *Service) Create(username, password, confirmPassword string) (User, error) {
	if err := ValidatePassword(password, confirmPassword); err != nil {
		return User{}, err
	}

	if _, err := s.repo.GetByUsername(username); err == nil {
		return User{}, ErrUsernameExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	return s.repo.Create(User{Username: username, Password: string(hashed)})
}

func (s *Service) Authenticate(username, password string) (User, error) {
	u, err := s.repo.GetByUsername(username)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

// ValidatePassword applies the account-creation password policy: the password
// must be present, at least seven characters long and equal to its
// confirmation.
func ValidatePassword(password, confirmPassword string) error {
	if password == "" || len(password) < minPasswordLength || password != confirmPassword {
		return ErrInvalidPassword
	}
	return nil
}

var _ ServiceInterface = (*Service)(nil)
