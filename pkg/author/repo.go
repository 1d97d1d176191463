package author

import (
	"errors"
	"sync"
)

type AuthorMemoryRepository struct {
	data  map[string]*Author
	order []*Author
	mu    sync.RWMutex
}

var ErrAuthorNotFound = errors.New("author not found")
var ErrAuthorAlready = errors.New("author already exists")

func NewAuthorMemRep() *AuthorMemoryRepository {
	return &AuthorMemoryRepository{
		data:  make(map[string]*Author),
		order: make([]*Author, 0),
	}
}

func (repo *AuthorMemoryRepository) AddAuthor(a *Author) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.data[a.ID]; ok {
		return ErrAuthorAlready
	}
	if a.Username == "" {
		a.Username = DeriveUsername(a.Name)
	}
	repo.data[a.ID] = a
	repo.order = append(repo.order, a)
	return nil
}

func (repo *AuthorMemoryRepository) GetAuthor(authorID string) (*Author, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if a, ok := repo.data[authorID]; ok {
		return a, nil
	}
	return nil, ErrAuthorNotFound
}

func (repo *AuthorMemoryRepository) GetByUsername(username string) (*Author, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, a := range repo.order {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, ErrAuthorNotFound
}

func (repo *AuthorMemoryRepository) GetAllAuthors() []*Author {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	authors := make([]*Author, len(repo.order))
	copy(authors, repo.order)
	return authors
}

// ToggleFollow flips the flag and moves the follower count by exactly one,
// under the same lock as the flag.
func (repo *AuthorMemoryRepository) ToggleFollow(authorID string) (*Author, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	a, ok := repo.data[authorID]
	if !ok {
		return nil, ErrAuthorNotFound
	}
	if a.IsFollowing {
		a.IsFollowing = false
		a.Followers -= 1
	} else {
		a.IsFollowing = true
		a.Followers += 1
	}
	return a, nil
}

// RemoveAuthor is idempotent; removing an absent author is not an error.
func (repo *AuthorMemoryRepository) RemoveAuthor(authorID string) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.data[authorID]; !ok {
		return
	}
	delete(repo.data, authorID)

	index := -1
	for i, a := range repo.order {
		if a.ID == authorID {
			index = i
			break
		}
	}
	if index != -1 {
		copy(repo.order[index:], repo.order[index+1:])
		repo.order = repo.order[:len(repo.order)-1]
	}
}
