package author

import (
	"strings"
	"unicode"
)

type Author struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	Posts       int    `json:"posts"`
	IsFollowing bool   `json:"isFollowing"`
	ID          string `json:"id"`
}

// DeriveUsername lowercases the display name and strips every whitespace
// character; all other characters pass through unchanged.
func DeriveUsername(displayName string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(displayName))
}

type AuthorRepo interface {
	AddAuthor(a *Author) error
	GetAuthor(authorID string) (*Author, error)
	GetByUsername(username string) (*Author, error)
	GetAllAuthors() []*Author
	ToggleFollow(authorID string) (*Author, error)
	RemoveAuthor(authorID string)
}
