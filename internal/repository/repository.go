package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Comment      CommentRepository
	Reaction     ReactionRepository
	Subscription SubscriptionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Comment:      NewCommentRepository(db),
		Reaction:     NewReactionRepository(db),
		Subscription: NewSubscriptionRepository(db),
	}
}
