package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"jobportal/internal/domain/application"
	"jobportal/internal/domain/job"
	"jobportal/internal/domain/messaging"
	"jobportal/internal/domain/user"
	"jobportal/internal/notify"

	"github.com/google/uuid"
)

// In-memory fakes backing the usecase tests. They enforce the same uniqueness
// rules the schema does so duplicate paths are exercised for real.

type fakeUserRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]user.Account
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{accounts: make(map[uuid.UUID]user.Account)}
}

func (r *fakeUserRepo) put(a user.Account) { r.accounts[a.ID] = a }

func (r *fakeUserRepo) CreateStudentAccount(_ context.Context, u user.User, p user.StudentProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Username == u.Username {
			return user.ErrDuplicateUsername
		}
	}
	r.accounts[u.ID] = user.Account{User: u, Student: &p}
	return nil
}

func (r *fakeUserRepo) CreateRecruiterAccount(_ context.Context, u user.User, p user.RecruiterProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Username == u.Username {
			return user.ErrDuplicateUsername
		}
	}
	r.accounts[u.ID] = user.Account{User: u, Recruiter: &p}
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return user.Account{}, user.ErrNotFound
	}
	return a, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return user.Account{}, user.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context, role user.Role) ([]user.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []user.Account
	for _, a := range r.accounts {
		if role == "" || a.Role == role {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return user.ErrNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *fakeUserRepo) GetRecruiter(_ context.Context, recruiterID uuid.UUID) (user.RecruiterProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Recruiter != nil && a.Recruiter.ID == recruiterID {
			return *a.Recruiter, nil
		}
	}
	return user.RecruiterProfile{}, user.ErrNotFound
}

func (r *fakeUserRepo) GetStudent(_ context.Context, studentID uuid.UUID) (user.StudentProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Student != nil && a.Student.ID == studentID {
			return *a.Student, nil
		}
	}
	return user.StudentProfile{}, user.ErrNotFound
}

func (r *fakeUserRepo) SetRecruiterApproval(_ context.Context, recruiterID uuid.UUID, approved bool) (user.RecruiterProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.accounts {
		if a.Recruiter != nil && a.Recruiter.ID == recruiterID {
			p := *a.Recruiter
			p.IsApproved = approved
			a.Recruiter = &p
			r.accounts[id] = a
			return p, nil
		}
	}
	return user.RecruiterProfile{}, user.ErrNotFound
}

func (r *fakeUserRepo) UpdateStudentProfile(_ context.Context, p user.StudentProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.accounts {
		if a.Student != nil && a.Student.ID == p.ID {
			a.Student = &p
			r.accounts[id] = a
			return nil
		}
	}
	return user.ErrNotFound
}

func (r *fakeUserRepo) UpdateRecruiterProfile(_ context.Context, p user.RecruiterProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.accounts {
		if a.Recruiter != nil && a.Recruiter.ID == p.ID {
			a.Recruiter = &p
			r.accounts[id] = a
			return nil
		}
	}
	return user.ErrNotFound
}

func (r *fakeUserRepo) Counts(context.Context) (user.Counts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c user.Counts
	c.Users = len(r.accounts)
	for _, a := range r.accounts {
		if a.Student != nil {
			c.Students++
		}
		if a.Recruiter != nil {
			c.Recruiters++
			if !a.Recruiter.IsApproved {
				c.PendingRecruiters++
			}
		}
	}
	return c, nil
}

func (r *fakeUserRepo) CountCreatedSince(_ context.Context, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, a := range r.accounts {
		if a.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]job.Job)}
}

func (r *fakeJobRepo) Create(_ context.Context, j job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[j.ID] = j
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (r *fakeJobRepo) Update(_ context.Context, j job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[j.ID]; !ok {
		return job.ErrNotFound
	}
	r.jobs[j.ID] = j
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) List(_ context.Context, f job.Filter) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []job.Job
	for _, j := range r.jobs {
		switch f.Scope {
		case job.ScopePublic:
			if !j.PubliclyVisible() {
				continue
			}
		case job.ScopeOwner:
			if j.PostedBy != f.RecruiterID {
				continue
			}
		}
		if f.JobType != "" && j.JobType != f.JobType {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *fakeJobRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return job.ErrNotFound
	}
	j.ViewsCount++
	r.jobs[id] = j
	return nil
}

func (r *fakeJobRepo) Suggestions(_ context.Context, prefix string, limit int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, j := range r.jobs {
		if strings.HasPrefix(strings.ToLower(j.Title), strings.ToLower(prefix)) {
			out = append(out, j.Title)
		}
	}
	sort.Strings(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeJobRepo) CountByRecruiter(_ context.Context, recruiterID uuid.UUID) (job.RecruiterJobCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c job.RecruiterJobCounts
	for _, j := range r.jobs {
		if j.PostedBy != recruiterID {
			continue
		}
		c.Total++
		if j.PubliclyVisible() {
			c.Active++
		}
	}
	return c, nil
}

func (r *fakeJobRepo) RecentByRecruiter(_ context.Context, recruiterID uuid.UUID, n int) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []job.Job
	for _, j := range r.jobs {
		if j.PostedBy == recruiterID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DatePosted.After(out[j].DatePosted) })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (r *fakeJobRepo) CountAll(context.Context) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total, active := 0, 0
	for _, j := range r.jobs {
		total++
		if j.PubliclyVisible() {
			active++
		}
	}
	return total, active, nil
}

func (r *fakeJobRepo) CountPostedSince(_ context.Context, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, j := range r.jobs {
		if j.DatePosted.After(since) {
			n++
		}
	}
	return n, nil
}

type fakeCategoryRepo struct {
	categories []job.Category
}

func (r *fakeCategoryRepo) ListCategories(context.Context) ([]job.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) PopularCategories(_ context.Context, n int) ([]job.Category, error) {
	if len(r.categories) > n {
		return r.categories[:n], nil
	}
	return r.categories, nil
}

func (r *fakeCategoryRepo) CreateCategory(_ context.Context, c job.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return job.ErrDuplicateCategory
		}
	}
	r.categories = append(r.categories, c)
	return nil
}

type fakeBookmarkRepo struct {
	mu    sync.Mutex
	marks map[uuid.UUID]job.Bookmark
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{marks: make(map[uuid.UUID]job.Bookmark)}
}

func (r *fakeBookmarkRepo) ListBookmarks(_ context.Context, studentID uuid.UUID) ([]job.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []job.Bookmark
	for _, b := range r.marks {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookmarkRepo) CreateBookmark(_ context.Context, b job.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.marks {
		if existing.StudentID == b.StudentID && existing.JobID == b.JobID {
			return job.ErrDuplicateBookmark
		}
	}
	r.marks[b.ID] = b
	return nil
}

func (r *fakeBookmarkRepo) DeleteBookmark(_ context.Context, id, studentID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.marks[id]
	if !ok || b.StudentID != studentID {
		return job.ErrBookmarkNotFound
	}
	delete(r.marks, id)
	return nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[uuid.UUID]application.Detail
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[uuid.UUID]application.Detail)}
}

// enrich lets tests preload the joined display fields Create cannot fill.
func (r *fakeApplicationRepo) enrich(id uuid.UUID, fn func(*application.Detail)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.apps[id]
	fn(&d)
	r.apps[id] = d
}

func (r *fakeApplicationRepo) Create(_ context.Context, a application.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.JobID == a.JobID && existing.StudentID == a.StudentID {
			return application.ErrAlreadyApplied
		}
	}
	a.AppliedDate = time.Now().UTC()
	r.apps[a.ID] = application.Detail{Application: a}
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.apps[id]
	if !ok {
		return application.Detail{}, application.ErrNotFound
	}
	return d, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.apps[id]
	if !ok {
		return application.ErrNotFound
	}
	d.Status = status
	d.RecruiterNotes = notes
	r.apps[id] = d
	return nil
}

func (r *fakeApplicationRepo) ListByStudent(_ context.Context, studentID uuid.UUID, limit int) ([]application.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []application.Detail
	for _, d := range r.apps {
		if d.StudentID == studentID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedDate.After(out[j].AppliedDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByRecruiter(_ context.Context, recruiterID uuid.UUID, limit int) ([]application.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []application.Detail
	for _, d := range r.apps {
		if d.JobRecruiterID == recruiterID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedDate.After(out[j].AppliedDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]application.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []application.Detail
	for _, d := range r.apps {
		if d.JobID == jobID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListAll(context.Context) ([]application.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []application.Detail
	for _, d := range r.apps {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeApplicationRepo) StatusCountsByStudent(_ context.Context, studentID uuid.UUID) (application.StatusCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c application.StatusCounts
	for _, d := range r.apps {
		if d.StudentID == studentID {
			count(&c, d.Status)
		}
	}
	return c, nil
}

func (r *fakeApplicationRepo) StatusCountsByRecruiter(_ context.Context, recruiterID uuid.UUID) (application.StatusCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c application.StatusCounts
	for _, d := range r.apps {
		if d.JobRecruiterID == recruiterID {
			count(&c, d.Status)
		}
	}
	return c, nil
}

func (r *fakeApplicationRepo) StatusCountsAll(context.Context) (application.StatusCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c application.StatusCounts
	for _, d := range r.apps {
		count(&c, d.Status)
	}
	return c, nil
}

func (r *fakeApplicationRepo) CountAppliedSince(_ context.Context, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, d := range r.apps {
		if d.AppliedDate.After(since) {
			n++
		}
	}
	return n, nil
}

func count(c *application.StatusCounts, s application.Status) {
	switch s {
	case application.StatusApplied:
		c.Applied++
	case application.StatusAccepted:
		c.Accepted++
	case application.StatusRejected:
		c.Rejected++
	}
}

type fakeMessagingRepo struct {
	mu       sync.Mutex
	convs    map[uuid.UUID]messaging.Conversation
	messages map[uuid.UUID]messaging.Message
}

func newFakeMessagingRepo() *fakeMessagingRepo {
	return &fakeMessagingRepo{
		convs:    make(map[uuid.UUID]messaging.Conversation),
		messages: make(map[uuid.UUID]messaging.Message),
	}
}

// bind fills the joined user id fields the SQL layer resolves from profiles.
func (r *fakeMessagingRepo) bind(convID uuid.UUID, recruiterUserID, studentUserID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.convs[convID]
	c.RecruiterUserID = recruiterUserID
	c.StudentUserID = studentUserID
	r.convs[convID] = c
}

func (r *fakeMessagingRepo) GetOrCreateConversation(_ context.Context, recruiterID, studentID uuid.UUID) (messaging.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.convs {
		if c.RecruiterID == recruiterID && c.StudentID == studentID {
			return c, nil
		}
	}
	c := messaging.Conversation{
		ID:          uuid.New(),
		RecruiterID: recruiterID,
		StudentID:   studentID,
		CreatedAt:   time.Now().UTC(),
	}
	r.convs[c.ID] = c
	return c, nil
}

func (r *fakeMessagingRepo) GetConversation(_ context.Context, id uuid.UUID) (messaging.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.convs[id]
	if !ok {
		return messaging.Conversation{}, messaging.ErrConversationNotFound
	}
	return c, nil
}

func (r *fakeMessagingRepo) ListByRecruiter(_ context.Context, recruiterID, viewerUserID uuid.UUID) ([]messaging.Summary, error) {
	return r.list(func(c messaging.Conversation) bool { return c.RecruiterID == recruiterID }, viewerUserID)
}

func (r *fakeMessagingRepo) ListByStudent(_ context.Context, studentID, viewerUserID uuid.UUID) ([]messaging.Summary, error) {
	return r.list(func(c messaging.Conversation) bool { return c.StudentID == studentID }, viewerUserID)
}

func (r *fakeMessagingRepo) list(match func(messaging.Conversation) bool, viewerUserID uuid.UUID) ([]messaging.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []messaging.Summary
	for _, c := range r.convs {
		if !match(c) {
			continue
		}
		s := messaging.Summary{Conversation: c}
		for _, m := range r.messages {
			if m.ConversationID == c.ID && m.SenderID != viewerUserID && !m.IsRead {
				s.UnreadCount++
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeMessagingRepo) CreateMessage(_ context.Context, m messaging.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.convs[m.ConversationID]; !ok {
		return messaging.ErrConversationNotFound
	}
	m.CreatedAt = time.Now().UTC()
	r.messages[m.ID] = m
	return nil
}

func (r *fakeMessagingRepo) GetMessage(_ context.Context, id uuid.UUID) (messaging.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return messaging.Message{}, messaging.ErrMessageNotFound
	}
	return m, nil
}

func (r *fakeMessagingRepo) ListMessages(_ context.Context, conversationID uuid.UUID) ([]messaging.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []messaging.Message
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMessagingRepo) MarkConversationRead(_ context.Context, conversationID, readerID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, m := range r.messages {
		if m.ConversationID == conversationID && m.SenderID != readerID && !m.IsRead {
			m.IsRead = true
			r.messages[id] = m
			n++
		}
	}
	return n, nil
}

func (r *fakeMessagingRepo) MarkMessageRead(_ context.Context, messageID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[messageID]
	if !ok {
		return messaging.ErrMessageNotFound
	}
	m.IsRead = true
	r.messages[messageID] = m
	return nil
}

func (r *fakeMessagingRepo) UnreadCountForRecruiter(_ context.Context, recruiterID, userID uuid.UUID) (int, error) {
	return r.unread(func(c messaging.Conversation) bool { return c.RecruiterID == recruiterID }, userID)
}

func (r *fakeMessagingRepo) UnreadCountForStudent(_ context.Context, studentID, userID uuid.UUID) (int, error) {
	return r.unread(func(c messaging.Conversation) bool { return c.StudentID == studentID }, userID)
}

func (r *fakeMessagingRepo) unread(match func(messaging.Conversation) bool, userID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.messages {
		c, ok := r.convs[m.ConversationID]
		if !ok || !match(c) {
			continue
		}
		if m.SenderID != userID && !m.IsRead {
			n++
		}
	}
	return n, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	received []notify.ApplicationEvent
	changed  []notify.ApplicationEvent
	messages []notify.MessageEvent
}

func (n *recordingNotifier) ApplicationReceived(ev notify.ApplicationEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.received = append(n.received, ev)
}

func (n *recordingNotifier) ApplicationStatusChanged(ev notify.ApplicationEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, ev)
}

func (n *recordingNotifier) MessageReceived(ev notify.MessageEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, ev)
}

type fakeTokenStore struct {
	mu     sync.Mutex
	denied map[string]bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{denied: make(map[string]bool)}
}

func (s *fakeTokenStore) DenyToken(_ context.Context, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.denied[tokenID] = true
	return nil
}

func (s *fakeTokenStore) IsTokenDenied(_ context.Context, tokenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.denied[tokenID]
}

func studentAccount(name string) user.Account {
	u := user.User{
		ID:       uuid.New(),
		Username: name,
		Email:    name + "@example.com",
		Role:     user.RoleStudent,
	}
	p := user.StudentProfile{ID: uuid.New(), UserID: u.ID, FirstName: "Ada", LastName: "Lovelace"}
	return user.Account{User: u, Student: &p}
}

func recruiterAccount(name string, approved bool) user.Account {
	u := user.User{
		ID:       uuid.New(),
		Username: name,
		Email:    name + "@example.com",
		Role:     user.RoleRecruiter,
	}
	p := user.RecruiterProfile{ID: uuid.New(), UserID: u.ID, CompanyName: "Acme", IsApproved: approved}
	return user.Account{User: u, Recruiter: &p}
}

func adminAccount(name string) user.Account {
	u := user.User{
		ID:       uuid.New(),
		Username: name,
		Email:    name + "@example.com",
		Role:     user.RoleAdmin,
		IsStaff:  true,
	}
	return user.Account{User: u}
}
