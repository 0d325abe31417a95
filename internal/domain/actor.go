package domain

import "fmt"

// ActorKind discriminates the author/actor union. Every switch over it is
// expected to cover all three variants.
type ActorKind int

const (
	ActorAnonymous ActorKind = iota
	ActorVisitor
	ActorUser
)

// Actor is the identity behind a request: a registered user, a named visitor
// (name + email, no account), or an anonymous client holding only an opaque
// reaction key. Exactly one variant's fields are populated.
type Actor struct {
	Kind ActorKind

	// ActorUser
	User *User

	// ActorVisitor
	VisitorName  string
	VisitorEmail string

	// ActorAnonymous
	AnonymousName string

	// AnonKey is the client-held opaque key attributing reactions for
	// non-registered actors. It is not a proof of identity.
	AnonKey string

	IP        string
	UserAgent string
}

func UserActor(u *User) Actor {
	return Actor{Kind: ActorUser, User: u}
}

func VisitorActor(name, email string) Actor {
	return Actor{Kind: ActorVisitor, VisitorName: name, VisitorEmail: email}
}

func AnonymousActor(name string) Actor {
	return Actor{Kind: ActorAnonymous, AnonymousName: name}
}

func (a Actor) IsAdmin() bool {
	return a.Kind == ActorUser && a.User != nil && a.User.IsAdmin()
}

// ReactionKey is the storage key attributing a reaction to this actor.
func (a Actor) ReactionKey() string {
	switch a.Kind {
	case ActorUser:
		return "u:" + a.User.ID.String()
	case ActorVisitor, ActorAnonymous:
		return "a:" + a.AnonKey
	default:
		panic(fmt.Sprintf("unknown actor kind %d", a.Kind))
	}
}

func (a Actor) DisplayName() string {
	switch a.Kind {
	case ActorUser:
		return a.User.DisplayName
	case ActorVisitor:
		return a.VisitorName
	case ActorAnonymous:
		return a.AnonymousName
	default:
		return ""
	}
}
