package imapmail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-message/mail"

	"github.com/talentops/resume-intake/internal/core/domain"
)

// documentsFromMessage walks the MIME parts of one message: inline text
// parts accumulate into the email body, resume attachments get stored and
// become documents. Attachments are buffered until the whole message is
// read because the keep decision can depend on the body text, which may
// arrive after them. A message with no resume attachment yields nothing.
func (c *Collector) documentsFromMessage(ctx context.Context, raw []byte, env *imap.Envelope) ([]domain.IncomingDocument, error) {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}

	type pendingAttachment struct {
		filename string
		data     []byte
	}
	var (
		body    strings.Builder
		pending []pendingAttachment
	)
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("read part: %w", err)
		}

		switch header := part.Header.(type) {
		case *mail.InlineHeader:
			text, err := inlineText(header, part.Body)
			if err != nil {
				c.log.Warn("skipping unreadable body part", "error", err)
				continue
			}
			if text != "" {
				if body.Len() > 0 {
					body.WriteString("\n")
				}
				body.WriteString(text)
			}
		case *mail.AttachmentHeader:
			filename, err := header.Filename()
			if err != nil || filename == "" {
				continue
			}
			if !c.keepAttachment(filename) {
				continue
			}
			data, err := io.ReadAll(part.Body)
			if err != nil {
				return nil, fmt.Errorf("read attachment %s: %w", filename, err)
			}
			pending = append(pending, pendingAttachment{filename: filename, data: data})
		}
	}
	if len(pending) == 0 {
		return nil, nil
	}

	subject, sender := envelopeContext(env)
	snippet := bodySnippet(body.String())
	fromMessage := c.messageSuggestsResume(subject, snippet)

	var docs []domain.IncomingDocument
	for _, att := range pending {
		if !c.nameSuggestsResume(att.filename) && !fromMessage {
			c.log.Info("skipping attachment without resume signal", "filename", att.filename)
			continue
		}
		path, err := c.storage.SaveUnique(ctx, att.filename, bytes.NewReader(att.data))
		if err != nil {
			return nil, fmt.Errorf("store attachment %s: %w", att.filename, err)
		}
		doc := domain.IncomingDocument{
			ID:                newDocumentID(),
			FilePath:          path,
			FileName:          att.filename,
			EmailSubject:      subject,
			EmailBody:         snippet,
			SenderDisplayName: sender,
		}
		if env != nil {
			doc.ReceivedAt = env.Date
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// inlineText decodes a text part, stripping markup from HTML bodies so the
// name miners downstream see plain prose.
func inlineText(header *mail.InlineHeader, body io.Reader) (string, error) {
	mediaType, _, err := header.ContentType()
	if err != nil {
		return "", fmt.Errorf("part content type: %w", err)
	}
	switch mediaType {
	case "text/plain":
		b, err := io.ReadAll(body)
		if err != nil {
			return "", fmt.Errorf("read text part: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	case "text/html":
		b, err := io.ReadAll(body)
		if err != nil {
			return "", fmt.Errorf("read html part: %w", err)
		}
		return htmlToText(string(b)), nil
	default:
		return "", nil
	}
}

const maxBodySnippet = 2000

// bodySnippet caps the email body carried on each document. Name mining
// only reads signatures and introductions, never full threads.
func bodySnippet(s string) string {
	if len(s) <= maxBodySnippet {
		return s
	}
	cut := s[:maxBodySnippet]
	if i := strings.LastIndexByte(cut, '\n'); i > maxBodySnippet/2 {
		cut = cut[:i]
	}
	return cut
}

func envelopeContext(env *imap.Envelope) (subject, sender string) {
	if env == nil {
		return "", ""
	}
	subject = env.Subject
	if len(env.From) > 0 {
		from := env.From[0]
		if from.Name != "" {
			sender = from.Name
		} else if from.Mailbox != "" && from.Host != "" {
			sender = from.Mailbox + "@" + from.Host
		}
	}
	return subject, sender
}
