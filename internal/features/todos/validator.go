package todos

import (
	"errors"
	"regexp"
	"strings"
)

var dueTimeRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

var validCategories = map[string]bool{
	CategoryPersonal:  true,
	CategoryWork:      true,
	CategoryShopping:  true,
	CategoryHealth:    true,
	CategoryFinance:   true,
	CategoryEducation: true,
	CategoryOther:     true,
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("please enter todo title")
	}
	if len(title) > maxTitleLength {
		return errors.New("title cannot exceed 200 characters")
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return errors.New("description cannot exceed 1000 characters")
	}
	return nil
}

func validatePriority(priority string) error {
	if !validPriorities[priority] {
		return errors.New("priority must be one of: low, medium, high")
	}
	return nil
}

func validateCategory(category string) error {
	if !validCategories[category] {
		return errors.New("category must be one of: personal, work, shopping, health, finance, education, other")
	}
	return nil
}

func validateDueTime(dueTime string) error {
	if !dueTimeRegex.MatchString(dueTime) {
		return errors.New("please enter valid time format (HH:MM)")
	}
	return nil
}

func ValidateCreateTodo(req *CreateTodoRequest) error {
	if err := validateTitle(req.Title); err != nil {
		return err
	}
	if err := validateDescription(req.Description); err != nil {
		return err
	}
	if req.Priority != "" {
		if err := validatePriority(req.Priority); err != nil {
			return err
		}
	}
	if req.Category != "" {
		if err := validateCategory(req.Category); err != nil {
			return err
		}
	}
	if req.DueTime != "" {
		if err := validateDueTime(req.DueTime); err != nil {
			return err
		}
	}
	return nil
}

func ValidateUpdateTodo(req *UpdateTodoRequest) error {
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Description != nil {
		if err := validateDescription(*req.Description); err != nil {
			return err
		}
	}
	if req.Priority != nil {
		if err := validatePriority(*req.Priority); err != nil {
			return err
		}
	}
	if req.Category != nil {
		if err := validateCategory(*req.Category); err != nil {
			return err
		}
	}
	if req.DueTime != nil && *req.DueTime != "" {
		if err := validateDueTime(*req.DueTime); err != nil {
			return err
		}
	}
	return nil
}
