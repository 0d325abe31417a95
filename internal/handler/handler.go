package handler

import "blog-comments/internal/service"

type Handlers struct {
	Auth     *AuthHandler
	Comment  *CommentHandler
	Reaction *ReactionHandler
	Account  *AccountHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(services.Auth),
		Comment:  NewCommentHandler(services.Comment),
		Reaction: NewReactionHandler(services.Reaction),
		Account:  NewAccountHandler(services.Subscription),
	}
}
