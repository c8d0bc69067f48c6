// Package domain defines the comment entity.
package domain

import "time"

// Comment is a reply to a post. UserName is joined in by the store on reads.
type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64
	UserName  string
	Content   string
	CreatedAt time.Time
}
