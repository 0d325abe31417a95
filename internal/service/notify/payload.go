package notify

// Payload is the sealed union of notification events. Each variant carries a
// denormalized snapshot of everything a provider needs to compose a message,
// so nothing is re-queried at send time.
type Payload interface {
	Kind() string
	Recipient() string
}

// CommentReply notifies the author of a comment that someone replied to it.
type CommentReply struct {
	ToEmail        string
	ToName         string
	AuthorName     string
	PagePath       string
	PageURL        string
	Content        string // sanitized HTML of the reply
	ParentContent  string // sanitized HTML of the comment replied to
	UnsubscribeURL string
	SiteName       string
}

func (CommentReply) Kind() string        { return "comment_reply" }
func (p CommentReply) Recipient() string { return p.ToEmail }

// AdminNewComment notifies the site admin of any new comment.
type AdminNewComment struct {
	ToEmail    string
	AuthorName string
	PagePath   string
	PageURL    string
	Content    string
	IsSpam     bool
	SiteName   string
}

func (AdminNewComment) Kind() string        { return "admin_new_comment" }
func (p AdminNewComment) Recipient() string { return p.ToEmail }
