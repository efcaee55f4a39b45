package users

import (
	"errors"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	maxNameLength     = 50
	minPasswordLength = 6
)

// NormalizeEmail lowercases and trims an email before storage or lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("please enter your name")
	}
	if len(name) > maxNameLength {
		return errors.New("name cannot exceed 50 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if !emailRegex.MatchString(NormalizeEmail(email)) {
		return errors.New("please enter a valid email")
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < minPasswordLength {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

func ValidateRegister(req *RegisterRequest) error {
	if err := validateName(req.Name); err != nil {
		return err
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	return validatePassword(req.Password)
}

func ValidateLogin(req *LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return errors.New("please provide email and password")
	}
	return nil
}

func ValidateUpdateProfile(req *UpdateProfileRequest) error {
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return err
		}
	}
	if req.Email != nil {
		if err := validateEmail(*req.Email); err != nil {
			return err
		}
	}
	return nil
}

func ValidateChangePassword(req *ChangePasswordRequest) error {
	if req.CurrentPassword == "" {
		return errors.New("please provide your current password")
	}
	return validatePassword(req.NewPassword)
}
