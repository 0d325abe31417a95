package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// EmailRenderer turns a payload into an email subject and HTML body. Both
// email providers share one renderer so the message looks the same whichever
// transport delivers it.
type EmailRenderer struct {
	templatePath string
}

func NewEmailRenderer() *EmailRenderer {
	return &EmailRenderer{templatePath: "internal/service/templates/email"}
}

func (r *EmailRenderer) Render(payload Payload) (subject, body string, err error) {
	switch p := payload.(type) {
	case CommentReply:
		subject = fmt.Sprintf("%s replied to your comment on %s", p.AuthorName, p.SiteName)
		body, err = r.execute("comment_reply.html", commentReplyView{
			CommentReply: p,
			// Comment bodies are already sanitized server-side.
			ContentHTML:       template.HTML(p.Content),
			ParentContentHTML: template.HTML(p.ParentContent),
		})
	case AdminNewComment:
		subject = fmt.Sprintf("New comment on %s", p.SiteName)
		if p.IsSpam {
			subject = fmt.Sprintf("New comment on %s (flagged as spam)", p.SiteName)
		}
		body, err = r.execute("admin_new_comment.html", adminNewCommentView{
			AdminNewComment: p,
			ContentHTML:     template.HTML(p.Content),
		})
	default:
		err = fmt.Errorf("no email template for payload kind %q", payload.Kind())
	}
	return subject, body, err
}

type commentReplyView struct {
	CommentReply
	ContentHTML       template.HTML
	ParentContentHTML template.HTML
}

type adminNewCommentView struct {
	AdminNewComment
	ContentHTML template.HTML
}

func (r *EmailRenderer) execute(templateName string, data any) (string, error) {
	tmpl, err := template.ParseFiles(
		filepath.Join(r.templatePath, "layout.html"),
		filepath.Join(r.templatePath, templateName),
	)
	if err != nil {
		return "", fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
