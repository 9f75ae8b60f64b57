package service

import (
	"errors"
	"log"
	"regexp"
	"time"

	"Nova_Community/internal/model"
	"Nova_Community/internal/pkg"
	"Nova_Community/internal/repository/mysql"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type UserService struct {
	repo *mysql.UserRepository
	smtp pkg.SMTPConfig
}

// NewUserService db 传 nil 时使用包级连接
func NewUserService(db *gorm.DB, smtp pkg.SMTPConfig) *UserService {
	return &UserService{
		repo: mysql.NewUserRepository(db),
		smtp: smtp,
	}
}

// Signup 注册：校验 + bcrypt + 签发 token
func (s *UserService) Signup(name, email, password string) (*model.User, string, error) {
	if len(name) < 2 {
		return nil, "", pkg.InvalidInput("name", "Name should be at least 2 characters.")
	}
	if !emailRe.MatchString(email) {
		return nil, "", pkg.InvalidEmail("This email is not valid.")
	}
	if len(password) < 6 {
		return nil, "", pkg.InvalidInput("password", "Password should be at least 6 characters.")
	}

	exists, err := s.repo.ExistsByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", pkg.ResourceExists("email", "User with this email address already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := pkg.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	// 欢迎邮件尽力而为，失败只记日志
	if s.smtp.Enabled() {
		go func(to, name string) {
			if err := pkg.SendEmail(s.smtp, to, "Welcome", pkg.WelcomeHTML(name)); err != nil {
				log.Printf("welcome email to %s failed: %v", to, err)
			}
		}(user.Email, user.Name)
	}

	return user, token, nil
}

// Signin 登录：邮箱存在 + 密码比对 + 签发 token
func (s *UserService) Signin(email, password string) (*model.User, string, error) {
	if !emailRe.MatchString(email) {
		return nil, "", pkg.InvalidEmail("This email is not valid.")
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", pkg.InvalidEmail("Please provide a valid email address.")
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", pkg.InvalidCredentials()
	}

	token, err := pkg.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Me 取当前用户资料
func (s *UserService) Me(userID string) (*model.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotSignedIn()
		}
		return nil, err
	}
	return user, nil
}
