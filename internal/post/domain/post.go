// Package domain defines the post entity and its errors.
package domain

import (
	"time"

	commentDomain "github.com/allisson/social/internal/comment/domain"
	"github.com/allisson/social/internal/errors"
)

// Post is a status update. UserName is joined in by the store on reads and
// Comments is only filled by listings.
type Post struct {
	ID        int64
	UserID    int64
	UserName  string
	Content   string
	CreatedAt time.Time
	Comments  []*commentDomain.Comment
}

// ErrPostNotFound indicates the post does not exist.
var ErrPostNotFound = errors.Define(errors.ErrNotFound, "post not found")
