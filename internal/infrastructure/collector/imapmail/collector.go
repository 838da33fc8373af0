// Package imapmail collects resume documents from a mailbox over IMAP.
// Each recent message is scanned for resume attachments; the surrounding
// email context (subject, body, sender display name, received time) rides
// along with every attachment because the identity pipeline mines it for
// candidate names.
package imapmail

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/google/uuid"

	"github.com/talentops/resume-intake/internal/core/domain"
	"github.com/talentops/resume-intake/internal/core/ports"
)

type Collector struct {
	addr     string
	username string
	password string
	mailbox  string
	lookback time.Duration
	storage  ports.ObjectStorage
	log      *slog.Logger

	allowedExts     map[string]struct{}
	skipWords       []string
	nameKeywords    []string
	subjectKeywords []string
	bodyKeywords    []string
	now             func() time.Time
}

type Options struct {
	// Mailbox defaults to INBOX.
	Mailbox string
	// Lookback bounds the SINCE search; defaults to 24h.
	Lookback time.Duration
	// AllowedExtensions defaults to .pdf and .docx.
	AllowedExtensions []string
	// SkipFileKeywords drops attachments whose name contains any of these,
	// e.g. "jd" for job descriptions recruiters mail back and forth.
	SkipFileKeywords []string
	// AttachmentNameKeywords mark an attachment as a resume by filename.
	// An attachment is kept only when its name matches one of these, or the
	// message subject/body matches SubjectKeywords/BodyKeywords.
	AttachmentNameKeywords []string
	SubjectKeywords        []string
	BodyKeywords           []string
}

var (
	defaultNameKeywords    = []string{"resume", "cv", "application", "profile", "bio", "curriculum_vitae", "cv_"}
	defaultSubjectKeywords = []string{"resume", "cv", "application", "job application", "c.v.", "bio-data"}
	defaultBodyKeywords    = []string{"resume", "cv", "curriculum vitae", "job application", "attached my resume", "see my attached cv", "application for the position of", "applying for"}
)

func New(addr, username, password string, storage ports.ObjectStorage, log *slog.Logger, options Options) *Collector {
	mailbox := options.Mailbox
	if mailbox == "" {
		mailbox = "INBOX"
	}
	lookback := options.Lookback
	if lookback <= 0 {
		lookback = 24 * time.Hour
	}
	exts := options.AllowedExtensions
	if len(exts) == 0 {
		exts = []string{".pdf", ".docx"}
	}
	allowed := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &Collector{
		addr:            addr,
		username:        username,
		password:        password,
		mailbox:         mailbox,
		lookback:        lookback,
		storage:         storage,
		log:             log,
		allowedExts:     allowed,
		skipWords:       lowerAll(options.SkipFileKeywords),
		nameKeywords:    keywordsOrDefault(options.AttachmentNameKeywords, defaultNameKeywords),
		subjectKeywords: keywordsOrDefault(options.SubjectKeywords, defaultSubjectKeywords),
		bodyKeywords:    keywordsOrDefault(options.BodyKeywords, defaultBodyKeywords),
		now:             time.Now,
	}
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func keywordsOrDefault(words, fallback []string) []string {
	if cleaned := lowerAll(words); len(cleaned) > 0 {
		return cleaned
	}
	return fallback
}

// Collect connects, finds messages received within the lookback window and
// returns one IncomingDocument per stored attachment. Messages that fail to
// parse are logged and skipped; only transport-level failures abort the run.
func (c *Collector) Collect(ctx context.Context) ([]domain.IncomingDocument, error) {
	client, err := imapclient.DialTLS(c.addr, nil)
	if err != nil {
		return nil, fmt.Errorf("imap dial %s: %w", c.addr, err)
	}
	defer client.Close()

	if err := client.Login(c.username, c.password).Wait(); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select(c.mailbox, nil).Wait(); err != nil {
		return nil, fmt.Errorf("imap select %s: %w", c.mailbox, err)
	}

	criteria := &imap.SearchCriteria{Since: c.now().Add(-c.lookback)}
	searchData, err := client.Search(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("imap search: %w", err)
	}
	seqNums := searchData.AllSeqNums()
	if len(seqNums) == 0 {
		return nil, nil
	}

	bodySection := &imap.FetchItemBodySection{}
	fetchOptions := &imap.FetchOptions{
		Envelope:    true,
		BodySection: []*imap.FetchItemBodySection{bodySection},
	}
	messages, err := client.Fetch(imap.SeqSetNum(seqNums...), fetchOptions).Collect()
	if err != nil {
		return nil, fmt.Errorf("imap fetch: %w", err)
	}

	var docs []domain.IncomingDocument
	for _, msg := range messages {
		raw := msg.FindBodySection(bodySection)
		if len(raw) == 0 {
			continue
		}
		msgDocs, err := c.documentsFromMessage(ctx, raw, msg.Envelope)
		if err != nil {
			c.log.Warn("skipping unparseable message", "error", err)
			continue
		}
		docs = append(docs, msgDocs...)
	}
	c.log.Info("mailbox collected",
		"messages", len(messages),
		"documents", len(docs),
	)
	return docs, nil
}

func (c *Collector) keepAttachment(filename string) bool {
	lower := strings.ToLower(filename)
	if _, ok := c.allowedExts[filepath.Ext(lower)]; !ok {
		return false
	}
	for _, w := range c.skipWords {
		if strings.Contains(lower, w) {
			return false
		}
	}
	return true
}

// nameSuggestsResume reports whether the filename alone marks the
// attachment as a resume.
func (c *Collector) nameSuggestsResume(filename string) bool {
	return containsAny(filename, c.nameKeywords)
}

// messageSuggestsResume reports whether the surrounding email reads like a
// job application, which rescues attachments with uninformative filenames.
func (c *Collector) messageSuggestsResume(subject, body string) bool {
	return containsAny(subject, c.subjectKeywords) || containsAny(body, c.bodyKeywords)
}

func containsAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, w := range keywords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func newDocumentID() string {
	return uuid.NewString()
}
