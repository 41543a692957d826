package shared

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/taskpulse/internal/domain"
)

// GetUser resolves a user reference and returns domain.ErrUserNotFound if
// nothing matches. The reference is tried as an exact ID first, then as a
// case-insensitive name. This centralizes the common pattern of:
//
//	user, err := repo.Get(id)
//	if err != nil { return nil, fmt.Errorf("get user: %w", err) }
//	if user == nil { return nil, domain.ErrUserNotFound }
func GetUser(repo domain.UserRepository, ref string) (*domain.User, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrUserNotFound
	}

	user, err := repo.Get(ref)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	users, err := repo.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var found *domain.User
	for _, u := range users {
		if !strings.EqualFold(u.Name, ref) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("user %q: %w", ref, domain.ErrAmbiguousRef)
		}
		found = u
	}
	if found == nil {
		return nil, domain.ErrUserNotFound
	}
	return found, nil
}

// FindTask resolves a task reference within a user's tasks.
// The reference may be a full ID or a unique ID prefix.
func FindTask(user *domain.User, ref string) (*domain.Task, error) {
	if t := user.Task(ref); t != nil {
		return t, nil
	}
	idx, err := matchPrefix(len(user.Tasks), func(i int) string { return user.Tasks[i].ID }, ref)
	if err != nil {
		if errors.Is(err, domain.ErrAmbiguousRef) {
			return nil, fmt.Errorf("task %q: %w", ref, err)
		}
		return nil, domain.ErrTaskNotFound
	}
	return &user.Tasks[idx], nil
}

// FindSubTask resolves a subtask reference within a task.
// The reference may be a full ID or a unique ID prefix.
func FindSubTask(task *domain.Task, ref string) (*domain.SubTask, error) {
	if st := task.SubTask(ref); st != nil {
		return st, nil
	}
	idx, err := matchPrefix(len(task.SubTasks), func(i int) string { return task.SubTasks[i].ID }, ref)
	if err != nil {
		if errors.Is(err, domain.ErrAmbiguousRef) {
			return nil, fmt.Errorf("subtask %q: %w", ref, err)
		}
		return nil, domain.ErrSubTaskNotFound
	}
	return &task.SubTasks[idx], nil
}

// matchPrefix returns the index of the only ID starting with prefix.
func matchPrefix(n int, id func(int) string, prefix string) (int, error) {
	if prefix == "" {
		return -1, domain.ErrTaskNotFound
	}
	match := -1
	for i := 0; i < n; i++ {
		if !strings.HasPrefix(id(i), prefix) {
			continue
		}
		if match >= 0 {
			return -1, domain.ErrAmbiguousRef
		}
		match = i
	}
	if match < 0 {
		return -1, domain.ErrTaskNotFound
	}
	return match, nil
}
